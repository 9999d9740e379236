package repository

import (
	"context"
	"errors"

	"github.com/guttosm/kol-client/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreSnapshotsRepository keeps snapshots in the store_snapshots collection.
type StoreSnapshotsRepository struct {
	collection *mongo.Collection
}

// NewStoreSnapshotsRepository creates a new snapshot repository.
func NewStoreSnapshotsRepository(db *MongoDB) *StoreSnapshotsRepository {
	return &StoreSnapshotsRepository{collection: db.StoreSnapshots}
}

// Save inserts snap with a fresh ObjectID.
func (r *StoreSnapshotsRepository) Save(ctx context.Context, snap *model.StoreSnapshot) error {
	snap.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, snap)
	return err
}

// Latest returns the most recently captured snapshot.
func (r *StoreSnapshotsRepository) Latest(ctx context.Context) (*model.StoreSnapshot, error) {
	var snap model.StoreSnapshot
	opts := options.FindOne().SetSort(bson.D{{Key: "captured_at", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// List returns snapshots, newest first.
func (r *StoreSnapshotsRepository) List(ctx context.Context, limit int) ([]model.StoreSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "captured_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	snaps := make([]model.StoreSnapshot, 0)
	if err := cursor.All(ctx, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
