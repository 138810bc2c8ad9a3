package main

import (
	"stayledger/config"
	"stayledger/di"
	"stayledger/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Init(cfg, "worker")

	worker, err := di.InitializeWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize worker")
	}

	if err := worker.Run(); err != nil {
		log.Fatal().Err(err).Msg("Worker stopped")
	}
}
