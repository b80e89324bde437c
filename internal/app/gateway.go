// Package app provides gateway initialization.
package app

import (
	"github.com/guttosm/food-details-service/config"
	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/rs/zerolog/log"
)

// GatewayBreakerName identifies the food API circuit breaker in health checks and metrics.
const GatewayBreakerName = "food_api"

// InitializeGateway creates the food API client guarded by a circuit breaker.
func InitializeGateway(cfg config.GatewayConfig) *gateway.Client {
	client := gateway.NewClient(
		cfg.BaseURL,
		gateway.WithTimeout(cfg.Timeout),
		gateway.WithCircuitBreaker(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             GatewayBreakerName,
		}),
	)

	log.Info().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Msg("Food API gateway configured")

	return client
}
