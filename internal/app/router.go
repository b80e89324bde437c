// Package app provides router configuration.
package app

import (
	"github.com/guttosm/food-details-service/config"
	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/guttosm/food-details-service/internal/http"
	"github.com/guttosm/food-details-service/internal/middleware"
	"github.com/guttosm/food-details-service/internal/service/cache"
	"github.com/guttosm/food-details-service/internal/ws"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	ScreenHandler    *http.ScreenHandler
	HealthHandler    *http.HealthHandler
	IdempotencyStore *cache.ShardedCache[*middleware.CachedResponse]
	Config           http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	hub *ws.Hub,
	breaker *circuitbreaker.CircuitBreaker,
	cfg config.Config,
) *RouterComponents {
	presenter := http.NewPresenter(services.Formatter)
	screenHandler := http.NewScreenHandler(services.Screens, presenter, hub)

	healthHandler := http.NewHealthHandler(services.Screens)
	if breaker != nil {
		healthHandler.RegisterCircuitBreaker(breaker.Name(), breaker)
	}

	routerCfg := http.DefaultRouterConfig()
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimit = cfg.Server.RateLimit
	}
	if cfg.Server.RateWindow > 0 {
		routerCfg.RateWindow = cfg.Server.RateWindow
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass

	store := middleware.NewIdempotencyStore()
	routerCfg.IdempotencyStore = store

	return &RouterComponents{
		ScreenHandler:    screenHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: store,
		Config:           routerCfg,
	}
}

