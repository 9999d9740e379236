// Package repository persists store-listing snapshots in MongoDB or memory.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotTTLIndex = "captured_at_ttl"

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
}

// DefaultMongoConfig returns a small pool suited to a single local client.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            10,
		MinPoolSize:            1,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client         *mongo.Client
	Database       *mongo.Database
	StoreSnapshots *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and creates indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:         client,
		Database:       db,
		StoreSnapshots: db.Collection("store_snapshots"),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.StoreSnapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "captured_at", Value: -1}},
	})
	return err
}

// SetSnapshotTTL replaces the expiry index on snapshots. A zero ttl removes it.
func (m *MongoDB) SetSnapshotTTL(ctx context.Context, ttl time.Duration) error {
	// The index may not exist yet.
	_, _ = m.StoreSnapshots.Indexes().DropOne(ctx, snapshotTTLIndex)

	if ttl <= 0 {
		return nil
	}

	_, err := m.StoreSnapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "captured_at", Value: 1}},
		Options: options.Index().
			SetName(snapshotTTLIndex).
			SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
