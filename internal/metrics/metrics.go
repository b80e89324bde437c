// Package metrics provides Prometheus metrics collection for the food details service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// GatewayRequestDuration tracks upstream food API latency by operation.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Upstream food API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// GatewayRequestsTotal counts upstream calls by operation and outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of upstream food API requests",
		},
		[]string{"operation", "outcome"},
	)

	// CircuitBreakerState exposes the breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)

	// ScreenSessionsActive tracks mounted food details screens.
	ScreenSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "screen_sessions_active",
			Help: "Number of mounted food details screens",
		},
	)

	// ScreenLoadsTotal counts load sequences by result.
	ScreenLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screen_loads_total",
			Help: "Total number of food details load sequences",
		},
		[]string{"result"},
	)

	// FavoriteTogglesTotal counts favorite toggles by action and result.
	FavoriteTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_toggles_total",
			Help: "Total number of favorite toggles",
		},
		[]string{"action", "result"},
	)

	// OrdersSubmittedTotal counts order submissions by result.
	OrdersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of order submissions",
		},
		[]string{"result"},
	)

	// ScreenStreamsActive tracks open websocket view streams.
	ScreenStreamsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "screen_streams_active",
			Help: "Number of open websocket screen streams",
		},
	)

	// CacheOperationsTotal tracks in-memory cache operations by cache name.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of in-memory cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// PanicsRecoveredTotal tracks handler panics turned into 500 responses.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of handler panics recovered",
		},
		[]string{"route"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordGatewayRequest records latency and outcome of an upstream call.
func RecordGatewayRequest(operation string, duration time.Duration, outcome string) {
	GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetCircuitBreakerState publishes a breaker state as its numeric value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordScreenLoad records the result of a load sequence.
func RecordScreenLoad(result string) {
	ScreenLoadsTotal.WithLabelValues(result).Inc()
}

// RecordFavoriteToggle records a favorite add or remove.
func RecordFavoriteToggle(action, result string) {
	FavoriteTogglesTotal.WithLabelValues(action, result).Inc()
}

// RecordOrderSubmitted records an order submission.
func RecordOrderSubmitted(result string) {
	OrdersSubmittedTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records an operation on the named cache.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// RecordPanicRecovered records a recovered panic on a route.
func RecordPanicRecovered(route string) {
	PanicsRecoveredTotal.WithLabelValues(route).Inc()
}

// SetActiveSessions publishes the number of mounted screens.
func SetActiveSessions(n int) {
	ScreenSessionsActive.Set(float64(n))
}

// SetActiveStreams publishes the number of open websocket streams.
func SetActiveStreams(n int) {
	ScreenStreamsActive.Set(float64(n))
}
