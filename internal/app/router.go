// Package app provides router configuration.
package app

import (
	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents may be nil.
func InitializeRouter(svc *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(http.Services{
		Sell:       svc.Deps,
		Character:  svc.Character,
		Composer:   svc.Composer,
		Dispatcher: svc.Dispatcher,
		Status:     svc.Tracker,
		Store:      svc.Store,
	})

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("game", svc.GameBreaker)
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb", dbComponents.CircuitBreaker)
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
