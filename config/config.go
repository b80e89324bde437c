// Package config provides configuration management for the food details service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Session SessionConfig
	Screen  ScreenConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// GatewayConfig holds the upstream food API client configuration.
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// SessionConfig bounds the in-memory screen session store.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// ScreenConfig holds presentation and behavior switches of the food details screen.
type ScreenConfig struct {
	CurrencyLocale     string
	CurrencyCode       string
	OptimisticFavorite bool
	LandingRoute       string
}

// Load creates a Config from environment variables.
// A .env file in the working directory is read first when present; variables
// already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Gateway: GatewayConfig{
			BaseURL:                        strings.TrimRight(getEnv("GATEWAY_BASE_URL", "http://localhost:3333"), "/"),
			Timeout:                        getEnvDuration("GATEWAY_TIMEOUT", 5*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			Capacity: getEnvInt("SESSION_CAPACITY", 10000),
			TTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		},
		Screen: ScreenConfig{
			CurrencyLocale:     getEnv("CURRENCY_LOCALE", "pt-BR"),
			CurrencyCode:       getEnv("CURRENCY_CODE", "BRL"),
			OptimisticFavorite: getEnvBool("FAVORITE_OPTIMISTIC", true),
			LandingRoute:       getEnv("LANDING_ROUTE", "Dashboard"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development (Expo / React Native web)
	defaults := []string{
		"http://localhost:19006",
		"http://127.0.0.1:19006",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
