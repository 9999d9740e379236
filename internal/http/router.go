package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/i18n"
	"github.com/guttosm/kol-client/internal/metrics"
	"github.com/guttosm/kol-client/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		EnableIdempotency: true,
	}
}

// NewRouter creates the gin engine serving the control API. handler and
// healthHandler may be nil, which leaves their routes out.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})
	router.NoMethod(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusMethodNotAllowed, i18n.ErrKeyInvalidRequest, nil)
	})

	api := router.Group("/api")
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	if handler != nil {
		handler.RegisterRoutes(api)
	}

	return router
}

// defaultCORSOrigins are the local front-end dev servers.
var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Language",
			middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
		},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers the probe, metrics and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
