package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/domains/listing"
	"marketplace-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

type listingServiceImpl struct {
	store store.Store
}

func NewListingService(s store.Store) listing.Service {
	return &listingServiceImpl{store: s}
}

func (s *listingServiceImpl) List(ctx context.Context, opts listing.ListOptions) ([]bson.M, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = listing.DefaultLimit
	}

	filter := listing.BuildFilter(opts.Term, opts.Category)

	docs, err := s.store.Query(ctx, listing.CollectionName, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return docs, nil
}

func (s *listingServiceImpl) Create(ctx context.Context, req *listing.CreateListingRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Create(ctx, listing.CollectionName, req.Document())
	if err != nil {
		return "", fmt.Errorf("create listing: %w", err)
	}
	return id, nil
}
