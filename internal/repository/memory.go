package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/guttosm/kol-client/internal/domain/model"
)

// MemorySnapshotRepository keeps the newest snapshots in memory. It is used
// when MongoDB is disabled.
type MemorySnapshotRepository struct {
	mu       sync.RWMutex
	capacity int
	snaps    []model.StoreSnapshot
}

// NewMemorySnapshotRepository keeps at most capacity snapshots (minimum 1).
func NewMemorySnapshotRepository(capacity int) *MemorySnapshotRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &MemorySnapshotRepository{capacity: capacity}
}

// Save stores snap, evicting the oldest one when full.
func (r *MemorySnapshotRepository) Save(_ context.Context, snap *model.StoreSnapshot) error {
	snap.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, *snap)
	if len(r.snaps) > r.capacity {
		r.snaps = r.snaps[len(r.snaps)-r.capacity:]
	}
	return nil
}

// Latest returns the newest snapshot.
func (r *MemorySnapshotRepository) Latest(_ context.Context) (*model.StoreSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.snaps) == 0 {
		return nil, nil
	}
	snap := r.snaps[len(r.snaps)-1]
	return &snap, nil
}

// List returns snapshots, newest first.
func (r *MemorySnapshotRepository) List(_ context.Context, limit int) ([]model.StoreSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.snaps)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.StoreSnapshot, 0, n)
	for i := len(r.snaps) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.snaps[i])
	}
	return out, nil
}
