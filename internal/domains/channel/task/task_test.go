package task_test

import (
	"testing"

	"stayledger/config"
	"stayledger/internal/domains/channel/task"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.Channel.Queue = "channel-sync"
	cfg.Channel.MaxRetry = 5
	cfg.Channel.LockTTLSeconds = 120

	tk, opts, err := task.New(task.KindPush, "c-1", cfg)
	require.NoError(t, err)
	assert.Equal(t, task.TypePush, tk.Type())
	assert.Len(t, opts, 4)

	p, err := task.Decode(tk)
	require.NoError(t, err)
	assert.Equal(t, "c-1", p.ConnectionID)
}

func TestNew_UnknownKind(t *testing.T) {
	_, _, err := task.New("rebuild", "c-1", &config.Config{})
	assert.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := task.Decode(asynq.NewTask(task.TypePull, []byte(`{}`)))
	assert.Error(t, err)

	_, err = task.Decode(asynq.NewTask(task.TypePull, []byte(`not json`)))
	assert.Error(t, err)
}
