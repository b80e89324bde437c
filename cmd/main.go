// Package main is the entry point for the food-details-service application.
//
// @title           Food Details Service API
// @version         1.0.0
// @description     Backend for the food details screen.
//
//	Mounts screen sessions for a food, composes extras and quantity into an order
//	total, keeps the favorite flag in sync with the food API and submits orders.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/food-details-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Screens
// @tag.description Food details screen sessions
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"time"

	_ "github.com/guttosm/food-details-service/docs" // swagger docs

	"github.com/guttosm/food-details-service/config"
	"github.com/guttosm/food-details-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(
		application.Router,
		cfg.Server.Port,
		app.WithWriteTimeout(cfg.Server.RequestTimeout+5*time.Second),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
