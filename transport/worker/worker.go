package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayledger/config"
	"stayledger/infras/kafka"
	"stayledger/infras/lock"
	"stayledger/infras/otel"
	bookingModel "stayledger/internal/domains/booking/model"
	channelService "stayledger/internal/domains/channel/service"
	"stayledger/internal/domains/channel/task"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const lockKeyPrefix = "channel:sync:"

// inventoryActions are the booking events after which channels need a fresh push.
var inventoryActions = map[string]bool{
	bookingModel.ActionCreated:    true,
	bookingModel.ActionConfirmed:  true,
	bookingModel.ActionCheckedIn:  true,
	bookingModel.ActionCheckedOut: true,
	bookingModel.ActionExtended:   true,
	bookingModel.ActionNoShow:     true,
	bookingModel.ActionCancelled:  true,
}

type Worker struct {
	cfg      *config.Config
	server   *asynq.Server
	channels channelService.Channel
	locker   lock.Locker
	kafka    kafka.Client
	otel     otel.Otel
}

func New(cfg *config.Config, server *asynq.Server, channels channelService.Channel, locker lock.Locker, kafka kafka.Client, otel otel.Otel) *Worker {
	return &Worker{
		cfg:      cfg,
		server:   server,
		channels: channels,
		locker:   locker,
		kafka:    kafka,
		otel:     otel,
	}
}

func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePush, w.HandlePush)
	mux.HandleFunc(task.TypePull, w.HandlePull)

	return mux
}

func (w *Worker) HandlePush(ctx context.Context, t *asynq.Task) error {
	return w.run(ctx, task.KindPush, t)
}

func (w *Worker) HandlePull(ctx context.Context, t *asynq.Task) error {
	return w.run(ctx, task.KindPull, t)
}

// run holds the connection lock for the whole job so push and pull of one connection never interleave.
func (w *Worker) run(ctx context.Context, kind string, t *asynq.Task) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".channel."+kind)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p, err := task.Decode(t)
	if err != nil {
		log.Error().Err(err).Str("type", t.Type()).Msg("dropping malformed sync task")

		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	scope.SetAttribute("channel.connection_id", p.ConnectionID)

	l, err := w.locker.Obtain(ctx, lockKeyPrefix+p.ConnectionID,
		time.Duration(w.cfg.Channel.LockTTLSeconds)*time.Second,
		time.Duration(w.cfg.Channel.LockWaitSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("connection %s busy: %w", p.ConnectionID, err)
	}

	defer func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Str("connection_id", p.ConnectionID).Msg("failed to release sync lock")
		}
	}()

	switch kind {
	case task.KindPush:
		_, err = w.channels.SyncInventory(ctx, p.ConnectionID, daterange.Range{})
	default:
		_, err = w.channels.PullBookings(ctx, p.ConnectionID, time.Time{})
	}

	if failure.IsKind(err, failure.KindNotFound) || failure.IsKind(err, failure.KindInvalidState) {
		log.Info().Err(err).Str("connection_id", p.ConnectionID).Str("kind", kind).Msg("sync no longer applies")

		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	return err
}

// Schedule registers the periodic fan-out; the caller starts and stops the returned cron.
func (w *Worker) Schedule(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(w.cfg.Channel.ScheduleSpec, func() {
		n, err := w.channels.EnqueueAll(ctx)
		if err != nil {
			log.Error().Err(err).Int("queued", n).Msg("scheduled channel sync partially failed")

			return
		}

		log.Info().Int("queued", n).Msg("scheduled channel sync queued")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid channel schedule %q: %w", w.cfg.Channel.ScheduleSpec, err)
	}

	return c, nil
}

// OnBookingEvent pushes fresh availability to every channel of the hotel after an inventory-changing transition.
func (w *Worker) OnBookingEvent(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.OnBookingEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[bookingModel.Event](msg)
	if err != nil {
		// Redelivery will not fix a bad payload.
		return nil
	}

	if event.HotelID == constant.Empty || !inventoryActions[event.Type] {
		return nil
	}

	scope.SetAttributes(map[string]any{
		"booking.id":   event.BookingID,
		"booking.type": event.Type,
	})

	return w.channels.EnqueueForHotel(ctx, event.HotelID, task.KindPush) //nolint:wrapcheck
}

// Run blocks until the asynq server receives a shutdown signal.
func (w *Worker) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler, err := w.Schedule(ctx)
	if err != nil {
		return err
	}

	scheduler.Start()
	defer scheduler.Stop()

	if w.cfg.Kafka.BookingTopic != constant.Empty && len(w.cfg.Kafka.Brokers) > 0 {
		go w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.BookingTopic, w.OnBookingEvent)
	}

	defer func() {
		if err := w.kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}()

	log.Info().Str("queue", w.cfg.Channel.Queue).Str("schedule", w.cfg.Channel.ScheduleSpec).Msg("Starting channel sync worker.")

	if err := w.server.Run(w.Mux()); err != nil && !errors.Is(err, asynq.ErrServerClosed) {
		return fmt.Errorf("worker stopped: %w", err)
	}

	return nil
}
