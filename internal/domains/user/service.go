package user

import "context"

// Service is the business logic boundary for the user resource.
type Service interface {
	// Create validates the payload and persists it. No duplicate-email
	// check runs before the insert.
	Create(ctx context.Context, req *CreateUserRequest) (string, error)
}
