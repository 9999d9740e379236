package repository

import (
	"context"

	"github.com/guttosm/kol-client/internal/domain/model"
)

// SnapshotRepository stores store-listing snapshots.
type SnapshotRepository interface {
	// Save stores snap and fills in its ID.
	Save(ctx context.Context, snap *model.StoreSnapshot) error
	// Latest returns the newest snapshot, or nil when there is none.
	Latest(ctx context.Context) (*model.StoreSnapshot, error)
	// List returns up to limit snapshots, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]model.StoreSnapshot, error)
}
