package listing

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Service is the business logic boundary for the listing resource.
type Service interface {
	// List returns at most opts.Limit listings matching the optional term
	// and category, in natural store order.
	List(ctx context.Context, opts ListOptions) ([]bson.M, error)

	// Create validates the payload and persists it, returning the new
	// record's identifier. A validation failure rejects the payload before
	// any store write.
	Create(ctx context.Context, req *CreateListingRequest) (string, error)
}
