package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/domains/activity"
	"marketplace-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

type activityServiceImpl struct {
	store store.Store
}

func NewActivityService(s store.Store) activity.Service {
	return &activityServiceImpl{store: s}
}

func (s *activityServiceImpl) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = activity.DefaultLimit
	}

	docs, err := s.store.Query(ctx, activity.CollectionName, bson.M{}, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return docs, nil
}
