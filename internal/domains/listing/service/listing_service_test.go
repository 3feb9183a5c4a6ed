package service

import (
	"context"
	"errors"
	"testing"

	"marketplace-backend/internal/domains/listing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock Store recording the last call.
type mockStore struct {
	createID   string
	createErr  error
	queryDocs  []bson.M
	queryErr   error
	createdIn  string
	createdDoc interface{}
	queriedIn  string
	gotFilter  bson.M
	gotLimit   int64
}

func (m *mockStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	m.createdIn = collection
	m.createdDoc = doc
	return m.createID, m.createErr
}

func (m *mockStore) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.queriedIn = collection
	m.gotFilter = filter
	m.gotLimit = limit
	return m.queryDocs, m.queryErr
}

// In-memory Store for round-trip style tests.
type memStore struct {
	docs map[string][]bson.M
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]bson.M)}
}

func (m *memStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	record, ok := doc.(bson.M)
	if !ok {
		return "", errors.New("unexpected document type")
	}
	id := primitive.NewObjectID().Hex()
	stored := bson.M{"_id": id}
	for k, v := range record {
		stored[k] = v
	}
	m.docs[collection] = append(m.docs[collection], stored)
	return id, nil
}

func (m *memStore) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	out := make([]bson.M, 0)
	for _, doc := range m.docs[collection] {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, doc)
	}
	return out, nil
}

func TestList_DefaultLimitAndEmptyFilter(t *testing.T) {
	st := &mockStore{queryDocs: []bson.M{}}
	svc := NewListingService(st)

	_, err := svc.List(context.Background(), listing.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, listing.CollectionName, st.queriedIn)
	assert.Equal(t, listing.DefaultLimit, st.gotLimit)
	assert.Equal(t, bson.M{}, st.gotFilter)
}

func TestList_PassesFilterThrough(t *testing.T) {
	st := &mockStore{queryDocs: []bson.M{}}
	svc := NewListingService(st)

	_, err := svc.List(context.Background(), listing.ListOptions{Term: "amp", Category: "audio", Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(5), st.gotLimit)
	assert.Equal(t, "audio", st.gotFilter["category"])
	assert.Contains(t, st.gotFilter, "$or")
}

func TestList_StoreErrorSurfaces(t *testing.T) {
	storeErr := errors.New("connection refused")
	st := &mockStore{queryErr: storeErr}
	svc := NewListingService(st)

	_, err := svc.List(context.Background(), listing.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestCreate_ReturnsIdentifier(t *testing.T) {
	st := &mockStore{createID: "663b2f1e9d5c4a0001a1b2c3"}
	svc := NewListingService(st)

	price := 10.0
	id, err := svc.Create(context.Background(), &listing.CreateListingRequest{
		Title:       "Amp",
		Description: "Tube amp",
		PriceUSD:    &price,
		Category:    "audio",
		SellerEmail: "seller@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, listing.CollectionName, st.createdIn)

	doc := st.createdDoc.(bson.M)
	assert.Equal(t, 4.8, doc["rating"])
}

func TestCreate_RejectedBeforeStoreWrite(t *testing.T) {
	st := &mockStore{createID: "should-not-be-used"}
	svc := NewListingService(st)

	_, err := svc.Create(context.Background(), &listing.CreateListingRequest{
		Description: "missing title and more",
	})
	require.Error(t, err)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "title")

	// Validation failures must not reach the store.
	assert.Empty(t, st.createdIn)
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	st := newMemStore()
	svc := NewListingService(st)

	price := 49.0
	id, err := svc.Create(context.Background(), &listing.CreateListingRequest{
		Title:       "Acoustic Guitar",
		Description: "Six strings",
		PriceUSD:    &price,
		Category:    "music",
		Tags:        []string{"music", "guitar"},
		SellerEmail: "seller@example.com",
	})
	require.NoError(t, err)

	docs, err := svc.List(context.Background(), listing.ListOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	got := docs[0]
	assert.Equal(t, id, got["_id"])
	assert.IsType(t, "", got["_id"])
	assert.Equal(t, "Acoustic Guitar", got["title"])
	assert.Equal(t, 49.0, got["price_usd"])
}

func TestList_LimitCapsResults(t *testing.T) {
	st := newMemStore()
	svc := NewListingService(st)

	price := 5.0
	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), &listing.CreateListingRequest{
			Title:       "Pick",
			Description: "Guitar pick",
			PriceUSD:    &price,
			Category:    "music",
			SellerEmail: "seller@example.com",
		})
		require.NoError(t, err)
	}

	docs, err := svc.List(context.Background(), listing.ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
