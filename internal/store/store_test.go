package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDisconnected_ReportsUnavailable(t *testing.T) {
	var s Store = Disconnected{}

	_, err := s.Create(context.Background(), "listing", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Query(context.Background(), "listing", bson.M{}, 10)
	assert.ErrorIs(t, err, ErrUnavailable)
}
