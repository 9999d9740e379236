package repository

import (
	"context"
	"errors"

	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/domain/model"
)

// SnapshotRepositoryWithCircuitBreaker wraps a SnapshotRepository with circuit breaker protection.
type SnapshotRepositoryWithCircuitBreaker struct {
	repo           SnapshotRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSnapshotRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSnapshotRepositoryWithCircuitBreaker(repo SnapshotRepository, cb *circuitbreaker.CircuitBreaker) *SnapshotRepositoryWithCircuitBreaker {
	return &SnapshotRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Save stores a snapshot. While the circuit is open the snapshot is dropped,
// the next listing page will carry the same data.
func (r *SnapshotRepositoryWithCircuitBreaker) Save(ctx context.Context, snap *model.StoreSnapshot) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, snap)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Latest returns the newest snapshot with circuit breaker protection.
func (r *SnapshotRepositoryWithCircuitBreaker) Latest(ctx context.Context) (*model.StoreSnapshot, error) {
	var result *model.StoreSnapshot
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Latest(ctx)
		return cbErr
	})
	return result, err
}

// List returns snapshots with circuit breaker protection.
func (r *SnapshotRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.StoreSnapshot, error) {
	var result []model.StoreSnapshot
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SnapshotRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
