package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayledger/config"

	"github.com/hibiken/asynq"
)

const (
	KindPush = "push"
	KindPull = "pull"

	TypePush = "channel:push"
	TypePull = "channel:pull"
)

type Payload struct {
	ConnectionID string `json:"connection_id"`
}

func TypeFor(kind string) (string, error) {
	switch kind {
	case KindPush:
		return TypePush, nil
	case KindPull:
		return TypePull, nil
	default:
		return "", fmt.Errorf("unknown sync kind %q", kind)
	}
}

// New builds a sync task; Unique drops a second enqueue for the same connection while one is pending.
func New(kind, connectionID string, cfg *config.Config) (*asynq.Task, []asynq.Option, error) {
	typename, err := TypeFor(kind)
	if err != nil {
		return nil, nil, err
	}

	b, err := json.Marshal(Payload{ConnectionID: connectionID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode sync payload: %w", err)
	}

	opts := []asynq.Option{
		asynq.Queue(cfg.Channel.Queue),
		asynq.MaxRetry(cfg.Channel.MaxRetry),
		asynq.Timeout(time.Duration(cfg.Channel.LockTTLSeconds) * time.Second),
		asynq.Unique(time.Duration(cfg.Channel.LockTTLSeconds) * time.Second),
	}

	return asynq.NewTask(typename, b), opts, nil
}

func Decode(t *asynq.Task) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid sync payload: %w", err)
	}

	if p.ConnectionID == "" {
		return p, errors.New("sync payload has no connection id")
	}

	return p, nil
}
