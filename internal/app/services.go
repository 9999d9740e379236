// Package app provides service initialization.
package app

import (
	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/character"
	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/compose"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/game"
	"github.com/guttosm/kol-client/internal/logger"
	"github.com/guttosm/kol-client/internal/metrics"
	"github.com/guttosm/kol-client/internal/repository"
	"github.com/guttosm/kol-client/internal/request"
	"github.com/guttosm/kol-client/internal/status"
	"github.com/guttosm/kol-client/internal/store"
	"github.com/pkg/errors"
)

// ServiceComponents holds the game-facing components.
type ServiceComponents struct {
	GameBreaker *circuitbreaker.CircuitBreaker
	Character   *character.State
	Composer    *compose.Composer
	Tracker     *status.Tracker
	Store       *store.Manager
	Deps        request.Deps
	Dispatcher  *dispatch.Dispatcher
}

// InitializeServices creates the game transport, the local character state and
// the message dispatcher. Store snapshots are written to snapshots.
func InitializeServices(cfg config.Config, snapshots repository.SnapshotRepository) (*ServiceComponents, error) {
	mode, err := model.ParseAutosellMode(cfg.Game.AutosellMode)
	if err != nil {
		return nil, errors.Wrapf(err, "autosell mode %q", cfg.Game.AutosellMode)
	}

	breaker := newCircuitBreaker("game", cfg.CircuitBreaker)
	client, err := game.NewClient(game.ClientConfig{
		BaseURL:       cfg.Game.BaseURL,
		SessionCookie: cfg.Game.SessionCookie,
		UserAgent:     cfg.Game.UserAgent,
		Timeout:       cfg.Game.RequestTimeout,
	}, game.WithCircuitBreaker(breaker))
	if err != nil {
		return nil, errors.Wrap(err, "game client")
	}

	char := character.NewState(mode)
	tracker := status.NewTracker()
	stores := store.NewManager(snapshots)

	deps := request.Deps{
		Transport:    client,
		Session:      game.NewSession(cfg.Game.PasswordHash),
		Inventory:    char,
		AutosellMode: char,
		Meat:         char,
		Listings:     stores,
		Display:      tracker,
		Errors:       logger.NewReporter(nil),
	}

	composer := compose.NewComposer("")
	dispatchCfg := dispatch.DefaultConfig()
	dispatchCfg.Workers = cfg.Dispatcher.Workers
	dispatchCfg.QueueSize = cfg.Dispatcher.QueueSize
	dispatcher := dispatch.New(composer, request.NewMessenger(deps), tracker, dispatchCfg)

	return &ServiceComponents{
		GameBreaker: breaker,
		Character:   char,
		Composer:    composer,
		Tracker:     tracker,
		Store:       stores,
		Deps:        deps,
		Dispatcher:  dispatcher,
	}, nil
}

// newCircuitBreaker creates a breaker that publishes its state to Prometheus.
func newCircuitBreaker(name string, cfg config.CircuitBreakerConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
