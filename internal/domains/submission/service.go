package submission

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Service is the business logic boundary for the submission resource.
type Service interface {
	// List returns at most limit submissions in natural store order.
	List(ctx context.Context, limit int64) ([]bson.M, error)

	// Create validates and persists the submission, then appends a
	// best-effort activity log entry. The log write never affects the
	// outcome: the returned id is valid even when the log write fails.
	Create(ctx context.Context, req *CreateSubmissionRequest) (string, error)
}
