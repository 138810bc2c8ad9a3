package logger

import (
	"io"
	"os"
	"time"

	"stayledger/config"
	"stayledger/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger for one process (api, worker, migrate).
// Production emits JSON lines; every other env gets the console writer.
func Init(cfg *config.Config, service string) {
	InitWithWriter(cfg, service, os.Stdout)
}

func InitWithWriter(cfg *config.Config, service string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Server.Env != constant.ServerEnvProduction {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", service).Logger()

	zerolog.SetGlobalLevel(Level(cfg.Server.LogLevel))
}

// Level parses SERVER_LOG_LEVEL; empty or unknown values mean info.
func Level(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
