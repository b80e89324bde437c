// Package app provides service initialization.
package app

import (
	"github.com/guttosm/food-details-service/config"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/pricing"
	"github.com/guttosm/food-details-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Fallback currency used when the configured locale or code cannot be parsed.
const (
	fallbackCurrencyLocale = "pt-BR"
	fallbackCurrencyCode   = "BRL"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Formatter *pricing.Formatter
	Screens   *service.FoodDetailsService
}

// InitializeServices initializes the screen session service on top of gw.
func InitializeServices(gw gateway.Gateway, cfg config.Config) *ServiceComponents {
	formatter := initializeFormatter(cfg.Screen)

	opts := []service.Option{
		service.WithFormatter(formatter),
		service.WithOptimisticFavorite(cfg.Screen.OptimisticFavorite),
	}
	if cfg.Session.Capacity > 0 {
		opts = append(opts, service.WithSessions(cfg.Session.Capacity, cfg.Session.TTL))
	}
	if cfg.Screen.LandingRoute != "" {
		opts = append(opts, service.WithLandingRoute(cfg.Screen.LandingRoute))
	}

	return &ServiceComponents{
		Formatter: formatter,
		Screens:   service.NewFoodDetailsService(gw, opts...),
	}
}

func initializeFormatter(cfg config.ScreenConfig) *pricing.Formatter {
	formatter, err := pricing.NewFormatter(cfg.CurrencyLocale, cfg.CurrencyCode)
	if err == nil {
		return formatter
	}

	log.Warn().
		Err(err).
		Str("locale", cfg.CurrencyLocale).
		Str("currency", cfg.CurrencyCode).
		Msg("Invalid currency settings - falling back to BRL")
	return pricing.MustFormatter(fallbackCurrencyLocale, fallbackCurrencyCode)
}
