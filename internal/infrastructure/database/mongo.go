package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxCollectionNames bounds the collection list returned for diagnostics.
const maxCollectionNames = 10

// MongoConfig holds the connection parameters for the document store.
type MongoConfig struct {
	URL            string
	Name           string
	ConnectTimeout time.Duration
}

// MongoDB wraps the driver client and the selected database. It owns the
// connection for the whole process lifetime and is safe for concurrent use.
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *MongoConfig
}

// NewMongoDB connects to the store and verifies the connection with a ping.
func NewMongoDB(cfg *MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Release whatever the driver allocated before reporting failure.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoDB{
		Client: client,
		DB:     client.Database(cfg.Name),
		Config: cfg,
	}, nil
}

// HealthCheck verifies that the store is still reachable.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if err := m.Client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// ListCollectionNames returns a bounded, best-effort list of known collection
// names. Diagnostics only, never used for data operations.
func (m *MongoDB) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if len(names) > maxCollectionNames {
		names = names[:maxCollectionNames]
	}
	return names, nil
}

// Close disconnects the underlying client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
