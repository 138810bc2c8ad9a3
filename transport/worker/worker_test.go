package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayledger/config"
	kafkaMocks "stayledger/infras/kafka/mocks"
	"stayledger/infras/lock"
	lockMocks "stayledger/infras/lock/mocks"
	otelMocks "stayledger/infras/otel/mocks"
	bookingModel "stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/channel/model/dto"
	channelMocks "stayledger/internal/domains/channel/service/mocks"
	"stayledger/internal/domains/channel/task"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/transport/worker"

	"github.com/hibiken/asynq"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	worker   *worker.Worker
	channels *channelMocks.MockChannel
	locker   *lockMocks.MockLocker
	lock     *lockMocks.MockLock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Channel.Queue = "channel-sync"
	cfg.Channel.LockTTLSeconds = 60
	cfg.Channel.LockWaitSeconds = 5
	cfg.Channel.ScheduleSpec = "@every 15m"

	return cfg
}

func newFixture(t *testing.T, cfg *config.Config) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		channels: channelMocks.NewMockChannel(ctrl),
		locker:   lockMocks.NewMockLocker(ctrl),
		lock:     lockMocks.NewMockLock(ctrl),
	}

	f.worker = worker.New(cfg, nil, f.channels, f.locker, kafkaMocks.NewMockClient(ctrl), otelMocks.NewOtel())

	return f
}

func syncTask(t *testing.T, kind string) *asynq.Task {
	t.Helper()

	tk, _, err := task.New(kind, "c-1", testConfig())
	require.NoError(t, err)

	return tk
}

func TestHandlePush_RunsUnderLock(t *testing.T) {
	f := newFixture(t, testConfig())

	gomock.InOrder(
		f.locker.EXPECT().Obtain(gomock.Any(), "channel:sync:c-1", 60*time.Second, 5*time.Second).Return(f.lock, nil),
		f.channels.EXPECT().SyncInventory(gomock.Any(), "c-1", daterange.Range{}).Return(dto.SyncResult{Succeeded: 2}, nil),
		f.lock.EXPECT().Release(gomock.Any()).Return(nil),
	)

	assert.NoError(t, f.worker.HandlePush(context.Background(), syncTask(t, task.KindPush)))
}

func TestHandlePull_LockBusyRetries(t *testing.T) {
	f := newFixture(t, testConfig())

	f.locker.EXPECT().Obtain(gomock.Any(), "channel:sync:c-1", gomock.Any(), gomock.Any()).Return(nil, lock.ErrNotObtained)

	err := f.worker.HandlePull(context.Background(), syncTask(t, task.KindPull))
	assert.ErrorIs(t, err, lock.ErrNotObtained)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandlePull_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantErr   bool
		wantRetry bool
	}{
		{name: "success"},
		{name: "upstream failure retries", err: failure.ChannelSyncError(errors.New("timeout")), wantErr: true, wantRetry: true},
		{name: "connection gone", err: failure.NotFound("channel connection not found"), wantErr: true},
		{name: "connection inactive", err: failure.InvalidState("connection c-1 is inactive"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testConfig())

			f.locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(f.lock, nil)
			f.channels.EXPECT().PullBookings(gomock.Any(), "c-1", time.Time{}).Return(dto.SyncResult{}, tt.err)
			f.lock.EXPECT().Release(gomock.Any()).Return(nil)

			err := f.worker.HandlePull(context.Background(), syncTask(t, task.KindPull))
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, !tt.wantRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	f := newFixture(t, testConfig())

	err := f.worker.HandlePush(context.Background(), asynq.NewTask(task.TypePush, []byte(`{}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestOnBookingEvent(t *testing.T) {
	encode := func(e bookingModel.Event) kafkaGo.Message {
		b, err := json.Marshal(e)
		require.NoError(t, err)

		return kafkaGo.Message{Key: []byte(e.BookingID), Value: b}
	}

	t.Run("inventory change queues a push", func(t *testing.T) {
		f := newFixture(t, testConfig())

		f.channels.EXPECT().EnqueueForHotel(gomock.Any(), "h-1", task.KindPush).Return(nil)

		err := f.worker.OnBookingEvent(context.Background(), encode(bookingModel.Event{
			Type: bookingModel.ActionCancelled, BookingID: "b-1", HotelID: "h-1",
		}))
		assert.NoError(t, err)
	})

	t.Run("payment events are ignored", func(t *testing.T) {
		f := newFixture(t, testConfig())

		err := f.worker.OnBookingEvent(context.Background(), encode(bookingModel.Event{
			Type: bookingModel.ActionPaymentCollected, BookingID: "b-1", HotelID: "h-1",
		}))
		assert.NoError(t, err)
	})

	t.Run("garbage is dropped", func(t *testing.T) {
		f := newFixture(t, testConfig())

		assert.NoError(t, f.worker.OnBookingEvent(context.Background(), kafkaGo.Message{Value: []byte("{")}))
	})
}

func TestSchedule(t *testing.T) {
	f := newFixture(t, testConfig())

	c, err := f.worker.Schedule(context.Background())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	cfg := testConfig()
	cfg.Channel.ScheduleSpec = "every now and then"

	_, err = newFixture(t, cfg).worker.Schedule(context.Background())
	assert.Error(t, err)
}
