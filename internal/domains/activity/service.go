package activity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Service reads the activity log. Writes happen as best-effort side effects
// inside the producing domains, not through this interface.
type Service interface {
	// List returns at most limit log entries in natural store order.
	// Newest-first is not guaranteed.
	List(ctx context.Context, limit int64) ([]bson.M, error)
}
