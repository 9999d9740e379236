package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// readinessTimeout bounds each dependency check.
const readinessTimeout = 2 * time.Second

// HealthChecker is a dependency that can report its health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers[name] = cb
	}
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK when the database answers and no circuit breaker is open. An open game breaker means sells and sends currently fail fast.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	var (
		mu     sync.Mutex
		ready  = true
		checks = make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers))
	)

	// Checks run concurrently so one slow dependency costs readinessTimeout at most.
	var g errgroup.Group
	for name, checker := range h.checkers {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
			defer cancel()
			err := checker.HealthCheck(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				checks[name] = err.Error()
				ready = false
				return nil
			}
			checks[name] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			ready = false
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, label := http.StatusOK, "ok"
	if !ready {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{"status": label, "checks": checks})
}
