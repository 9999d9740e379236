// Package metrics provides Prometheus metrics for the game client.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks control API request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total control API requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// GameRequestsTotal tracks wire requests sent to the game server.
	GameRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_requests_total",
			Help: "Total number of form requests sent to the game server",
		},
		[]string{"endpoint", "status_code"},
	)

	// GameRequestDuration tracks game server round trip time.
	GameRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "game_request_duration_seconds",
			Help:    "Game server request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// SellBatchesTotal tracks submitted sell batches by sale mode and batch kind.
	SellBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sell_batches_total",
			Help: "Total number of sell batches submitted",
		},
		[]string{"mode", "kind"},
	)

	// ItemsSoldTotal tracks item stacks included in submitted sell batches.
	ItemsSoldTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_sold_total",
			Help: "Total number of item stacks submitted for sale",
		},
		[]string{"mode"},
	)

	// MeatCreditedTotal tracks meat credited from autosell responses.
	MeatCreditedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meat_credited_total",
			Help: "Total meat credited from autosell responses",
		},
	)

	// MessagesDispatchedTotal tracks background message sends by result.
	MessagesDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_dispatched_total",
			Help: "Total number of message send tasks by result",
		},
		[]string{"result"},
	)

	// DispatchQueueDepth tracks tasks waiting for a dispatch worker.
	DispatchQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_queue_depth",
			Help: "Number of message send tasks waiting for a worker",
		},
	)

	// CircuitBreakerState tracks breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordGameRequest records one wire request to the game server.
// A status of 0 means the request never produced a response.
func RecordGameRequest(endpoint string, status int, duration time.Duration) {
	GameRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	GameRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordSellBatch records a submitted sell batch of n item stacks.
func RecordSellBatch(mode, kind string, n int) {
	SellBatchesTotal.WithLabelValues(mode, kind).Inc()
	ItemsSoldTotal.WithLabelValues(mode).Add(float64(n))
}

// RecordMeatCredited records meat credited from a sale.
func RecordMeatCredited(amount int) {
	if amount > 0 {
		MeatCreditedTotal.Add(float64(amount))
	}
}

// RecordMessageDispatch records the outcome of a background message send.
func RecordMessageDispatch(result string) {
	MessagesDispatchedTotal.WithLabelValues(result).Inc()
}

// SetDispatchQueueDepth updates the dispatch queue gauge.
func SetDispatchQueueDepth(depth int) {
	DispatchQueueDepth.Set(float64(depth))
}

// SetCircuitBreakerState updates the breaker state gauge.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
