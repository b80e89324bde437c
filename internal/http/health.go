package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/internal/circuitbreaker"
)

// SessionCounter reports the number of mounted screens.
type SessionCounter interface {
	ActiveSessions() int
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	sessions        SessionCounter
}

// NewHealthHandler creates a new HealthHandler. sessions may be nil.
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		sessions:        sessions,
	}
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness check endpoint.
// @Summary     Liveness check
// @Description Returns OK if the service is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
//
// Metrics endpoint is available at /metrics for Prometheus scraping.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness check endpoint.
// @Summary     Readiness check
// @Description Reports degraded while the food API circuit breaker is open, since no screen can load.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]interface{})

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			status = http.StatusServiceUnavailable
		}
	}

	if h.sessions != nil {
		checks["active_sessions"] = h.sessions.ActiveSessions()
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}
