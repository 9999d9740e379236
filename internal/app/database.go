// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	Snapshots      repository.SnapshotRepository
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the snapshot repository.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, cbCfg config.CircuitBreakerConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory snapshots")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetSnapshotTTL(ctx, cfg.SnapshotTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set store snapshot TTL index")
	}

	cb := newCircuitBreaker("mongodb-store-snapshots", cbCfg)

	return &DatabaseComponents{
		DB:             db,
		Snapshots:      repository.NewSnapshotRepositoryWithCircuitBreaker(repository.NewStoreSnapshotsRepository(db), cb),
		CircuitBreaker: cb,
	}
}
