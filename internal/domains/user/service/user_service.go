package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/domains/user"
	"marketplace-backend/internal/store"
)

type userServiceImpl struct {
	store store.Store
}

func NewUserService(s store.Store) user.Service {
	return &userServiceImpl{store: s}
}

func (s *userServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Create(ctx, user.CollectionName, req.Document())
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}
