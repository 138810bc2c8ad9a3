package redis

import (
	"context"
	"net"
	"time"

	"stayledger/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Addr is the primary redis address shared by the cache, locks and the asynq queue.
func Addr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Cache.Redis.Primary.Host, cfg.Cache.Redis.Primary.Port)
}

// New connects the cache/lock client on the primary DB. The asynq queue uses its own DB index.
func New(cfg *config.Config) *goRedis.Client {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     Addr(cfg),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", Addr(cfg)).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Int("queue_db", cfg.Cache.Redis.Queue.DB).
		Str("addr", Addr(cfg)).
		Msg("Connected to Redis")

	return client
}
