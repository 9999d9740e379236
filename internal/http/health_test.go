package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{Name: "game", FailureThreshold: 1, Timeout: time.Hour})
	err := cb.Execute(context.Background(), func() error { return errors.New("boom") })
	require.Error(t, err)
	require.Equal(t, circuitbreaker.StateOpen, cb.State())
	return cb
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setupHandler   func(*testing.T) *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers",
			setupHandler:   func(*testing.T) *HealthHandler { return NewHealthHandler() },
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy database and closed breaker",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("database", checkerFunc(func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					if !hasDeadline {
						return errors.New("no deadline")
					}
					return nil
				}))
				h.RegisterCircuitBreaker("game", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"database": "ok", "game_circuit": "closed"},
		},
		{
			name: "failing database",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("database", checkerFunc(func(context.Context) error { return errors.New("server selection timeout") }))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"database": "server selection timeout"},
		},
		{
			name: "open game breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("game", openBreaker(t))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"game_circuit": "open"},
		},
		{
			name: "nil breaker is ignored",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("database", nil)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler(t).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
