// Package store provides MongoDB connectivity for the credential store.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/travelpal/travelpal/internal/metrics"
)

// Config holds MongoDB connection configuration.
type Config struct {
	URI      string
	Database string
}

// Client wraps a MongoDB connection.
type Client struct {
	client  *mongo.Client
	db      *mongo.Database
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewClient connects to MongoDB and verifies the connection with a ping.
// collector may be nil; query timings are then not recorded.
func NewClient(ctx context.Context, cfg Config, collector *metrics.Collector, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", "database", cfg.Database)

	return &Client{
		client:  client,
		db:      client.Database(cfg.Database),
		metrics: collector,
		logger:  logger,
	}, nil
}

// EnsureIndexes creates the unique indexes the credential store relies on.
// Safe to call on every startup.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	users := c.db.Collection(usersCollection)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := users.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

// Users returns the user store bound to this connection.
func (c *Client) Users() *UserStore {
	return &UserStore{coll: c.db.Collection(usersCollection), metrics: c.metrics}
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
