package main

import (
	"guesthouse/config"
	"guesthouse/di"
	"guesthouse/helper"
	"guesthouse/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Guest House Booking API
// @version 1.0
// @description Room booking, approval and availability for the campus guest house.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	app := di.InitializeService()
	app.Run()
}
