package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayledger/infras/otel"
	"stayledger/shared/constant"

	"github.com/bsm/redislock"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const otelAttrLockKey = "lock.key"

// ErrNotObtained is returned when another holder owns the key for the whole wait window.
var ErrNotObtained = redislock.ErrNotObtained

type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out exclusive, TTL-bounded locks keyed by name.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl, wait time.Duration) (Lock, error)
}

type lockerImpl struct {
	client *redislock.Client
	otel   otel.Otel
}

func New(client *goRedis.Client, otel otel.Otel) Locker {
	return &lockerImpl{
		client: redislock.New(client),
		otel:   otel,
	}
}

func (l *lockerImpl) Obtain(ctx context.Context, key string, ttl, wait time.Duration) (res Lock, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".lock.Obtain")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrLockKey, key)

	opts := &redislock.Options{}
	if wait > 0 {
		opts.RetryStrategy = redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), int(wait/(100*time.Millisecond)))
	}

	lock, err := l.client.Obtain(ctx, key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		log.Warn().Str("key", key).Msg("lock held by another worker")

		return nil, ErrNotObtained
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to obtain lock")

		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	return lock, nil
}
