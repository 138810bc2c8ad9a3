package main

import (
	"os"

	"stayledger/config"
	"stayledger/helper"
	"stayledger/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.Init(cfg, "migrate")

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop, version or force <version>")
	}

	if err := helper.Run(cfg, os.Args[1], os.Args[argLength:]...); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
