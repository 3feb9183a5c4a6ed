// Package store is the sole boundary to persistent storage. Every resource
// handler goes through the Store interface; nothing else touches the driver.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned when the document store is unreachable or
// rejects an operation. Callers must surface it as a server error instead of
// masking an outage as an empty result.
var ErrUnavailable = errors.New("document store unavailable")

// Store exposes the two data operations the API needs. Implementations must
// be safe for concurrent use.
type Store interface {
	// Create inserts one record and returns the store-generated identifier
	// rendered as an opaque string.
	Create(ctx context.Context, collection string, doc interface{}) (string, error)

	// Query returns at most limit records in natural store order. Each
	// record's _id field is rendered as a string.
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// Disconnected is the Store used when no connection string was configured or
// the initial connect failed. Every operation reports ErrUnavailable, which
// keeps the nil-checks out of the services.
type Disconnected struct{}

func (Disconnected) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	return "", ErrUnavailable
}

func (Disconnected) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	return nil, ErrUnavailable
}
