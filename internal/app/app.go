// Package app provides application initialization and dependency injection.
package app

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/config"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/http"
	"github.com/guttosm/food-details-service/internal/middleware"
	"github.com/guttosm/food-details-service/internal/service"
	"github.com/guttosm/food-details-service/internal/service/cache"
	"github.com/guttosm/food-details-service/internal/ws"
	"github.com/rs/zerolog/log"
)

// App holds the wired application components.
type App struct {
	Router  *gin.Engine
	Screens *service.FoodDetailsService
	Hub     *ws.Hub
	Gateway *gateway.Client

	idempotency *cache.ShardedCache[*middleware.CachedResponse]
	closeOnce   sync.Once
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Logger first so the other components log with the right level.
	InitializeLogger()

	client := InitializeGateway(cfg.Gateway)
	services := InitializeServices(client, cfg)
	hub := ws.NewHub()

	routerComponents := InitializeRouter(services, hub, client.CircuitBreaker(), cfg)

	return &App{
		Router:  http.NewRouter(routerComponents.ScreenHandler, routerComponents.HealthHandler, routerComponents.Config),
		Screens: services.Screens,
		Hub:     hub,
		Gateway: client,

		idempotency: routerComponents.IdempotencyStore,
	}
}

// Close disconnects stream clients, unmounts every screen session and stops
// the idempotency replay cache.
// Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.Hub != nil {
			a.Hub.Shutdown()
		}
		if a.Screens != nil {
			a.Screens.Shutdown()
		}
		if a.idempotency != nil {
			a.idempotency.Stop()
		}
		log.Info().Msg("Application resources released")
	})
}
