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
	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSessions int

func (f fixedSessions) ActiveSessions() int { return int(f) }

func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "food_api",
	})
	err := cb.Execute(context.Background(), func(context.Context) error {
		return errors.New("upstream down")
	})
	require.Error(t, err)
	require.Equal(t, circuitbreaker.StateOpen, cb.State())
	return cb
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler(nil).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setupHandler   func(t *testing.T) *HealthHandler
		expectedStatus int
		expectedState  string
		expectedChecks map[string]interface{}
	}{
		{
			name: "no checks registered",
			setupHandler: func(t *testing.T) *HealthHandler {
				return NewHealthHandler(nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "closed breaker with sessions",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler(fixedSessions(3))
				h.RegisterCircuitBreaker("food_api", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
			expectedChecks: map[string]interface{}{"food_api_circuit": "closed", "active_sessions": float64(3)},
		},
		{
			name: "open breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler(fixedSessions(0))
				h.RegisterCircuitBreaker("food_api", openBreaker(t))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
			expectedChecks: map[string]interface{}{"food_api_circuit": "open", "active_sessions": float64(0)},
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
			assert.Equal(t, tt.expectedState, body.Status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
		})
	}
}
