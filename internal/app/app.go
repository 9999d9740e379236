// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/http"
	"github.com/guttosm/kol-client/internal/repository"
	"github.com/rs/zerolog/log"
)

// memorySnapshots is how many store snapshots are kept without MongoDB.
const memorySnapshots = 32

// App is the wired client: the control API router plus the components that
// need an orderly shutdown.
type App struct {
	Router     *gin.Engine
	Dispatcher *dispatch.Dispatcher
	Database   *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// Logger first, everything below logs.
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database, cfg.CircuitBreaker)

	var snapshots repository.SnapshotRepository = repository.NewMemorySnapshotRepository(memorySnapshots)
	if dbComponents != nil {
		snapshots = dbComponents.Snapshots
	}

	serviceComponents, err := InitializeServices(cfg, snapshots)
	if err != nil {
		if dbComponents != nil {
			_ = dbComponents.DB.Close(context.Background())
		}
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:     http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Dispatcher: serviceComponents.Dispatcher,
		Database:   dbComponents,
	}, nil
}

// Close waits for queued message sends and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	err := a.Dispatcher.Close(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Message dispatcher did not drain before shutdown")
	}

	if a.Database != nil {
		if dbErr := a.Database.DB.Close(ctx); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}
