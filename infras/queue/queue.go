package queue

//go:generate go run go.uber.org/mock/mockgen -source=./queue.go -destination=./mocks/queue_mock.go -package=mocks

import (
	"context"

	"stayledger/config"
	"stayledger/infras/redis"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Enqueuer is the producing side of the task queue; *asynq.Client satisfies it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     redis.Addr(cfg),
		Password: cfg.Cache.Redis.Primary.Password,
		DB:       cfg.Cache.Redis.Queue.DB,
	}
}

func NewClient(cfg *config.Config) *asynq.Client {
	client := asynq.NewClient(RedisOpt(cfg))

	log.Info().Int("db", cfg.Cache.Redis.Queue.DB).Msg("Task queue client initialized")

	return client
}

func NewEnqueuer(client *asynq.Client) Enqueuer {
	return client
}

func NewServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: cfg.Channel.WorkerConcurrency,
			Queues: map[string]int{
				cfg.Channel.Queue: 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				log.Error().Err(err).Str("type", task.Type()).Int("retried", retried).Msg("task failed")
			}),
		},
	)
}
