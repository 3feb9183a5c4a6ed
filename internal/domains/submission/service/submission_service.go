package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/domains/activity"
	"marketplace-backend/internal/domains/submission"
	"marketplace-backend/internal/store"
	"marketplace-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

type submissionServiceImpl struct {
	store store.Store
}

func NewSubmissionService(s store.Store) submission.Service {
	return &submissionServiceImpl{store: s}
}

func (s *submissionServiceImpl) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = submission.DefaultLimit
	}

	docs, err := s.store.Query(ctx, submission.CollectionName, bson.M{}, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return docs, nil
}

func (s *submissionServiceImpl) Create(ctx context.Context, req *submission.CreateSubmissionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Create(ctx, submission.CollectionName, req.Document())
	if err != nil {
		return "", fmt.Errorf("create submission: %w", err)
	}

	// Fire-and-forget activity log entry. The submission is already durable;
	// a log outage must not turn a successful create into an error, so the
	// write failure is discarded after a low-severity log line.
	record := activity.Record{
		ActorEmail: req.SubmitterEmail,
		Action:     activity.ActionSubmissionCreated,
		Target:     id,
	}
	if _, err := s.store.Create(ctx, activity.CollectionName, record.Document()); err != nil {
		logger.Warn("activity log write dropped", err)
	}

	return id, nil
}
