package main

import (
	"stayledger/config"
	"stayledger/di"
	"stayledger/helper"
	"stayledger/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title StayLedger API
// @version 1.0
// @description Booking lifecycle, inventory ledger, payment reconciliation and OTA channel sync.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Init(cfg, "api")

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Run(cfg, "up"); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
