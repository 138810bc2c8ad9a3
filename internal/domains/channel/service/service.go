package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayledger/config"
	"stayledger/infras/ota"
	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/infras/queue"
	"stayledger/infras/s3"
	bookingService "stayledger/internal/domains/booking/service"
	"stayledger/internal/domains/channel/model"
	"stayledger/internal/domains/channel/model/dto"
	"stayledger/internal/domains/channel/repository"
	"stayledger/internal/domains/channel/task"
	inventoryService "stayledger/internal/domains/inventory/service"
	roomService "stayledger/internal/domains/room/service"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	gModel "stayledger/shared/model"
	"stayledger/shared/secret"
	"stayledger/shared/timezone"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// CredentialPurpose binds the credential sealing key to channel connections.
const CredentialPurpose = "channel-credentials"

type Channel interface {
	Connect(ctx context.Context, hotelID string, req dto.ConnectRequest) (dto.ConnectionResponse, error)
	// Disconnect deactivates the connection; mappings and history stay.
	Disconnect(ctx context.Context, hotelID, connectionID string) error
	GetAll(ctx context.Context, hotelID string) ([]dto.ConnectionResponse, error)
	GetMappings(ctx context.Context, hotelID, connectionID string) ([]dto.MappingResponse, error)
	ReplaceMappings(ctx context.Context, hotelID, connectionID string, req dto.ReplaceMappingsRequest) ([]dto.MappingResponse, error)

	EnqueueSync(ctx context.Context, hotelID, connectionID, kind string) error
	// EnqueueForHotel queues kind for every active connection of the hotel.
	EnqueueForHotel(ctx context.Context, hotelID, kind string) error
	// EnqueueAll queues push then pull for every active connection and returns how many were queued.
	EnqueueAll(ctx context.Context) (int, error)

	// SyncInventory pushes ledger availability for r; per-room failures do not stop the run.
	SyncInventory(ctx context.Context, connectionID string, r daterange.Range) (dto.SyncResult, error)
	// PullBookings imports reservations created since the watermark; conflicts are logged, never overwritten.
	PullBookings(ctx context.Context, connectionID string, since time.Time) (dto.SyncResult, error)

	ListConflicts(ctx context.Context, hotelID, status string, params gDto.QueryParams) (dto.GetConflictsResponse, error)
	ResolveConflict(ctx context.Context, hotelID, conflictID string, req dto.ResolveConflictRequest) (dto.ConflictResponse, error)
}

type serviceImpl struct {
	repo      repository.Channel
	rooms     roomService.Room
	inventory inventoryService.Inventory
	bookings  bookingService.Booking
	providers ota.Registry
	box       *secret.Box
	archive   s3.S3
	queue     queue.Enqueuer
	tx        postgres.Transactor
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Channel,
	rooms roomService.Room,
	inventory inventoryService.Inventory,
	bookings bookingService.Booking,
	providers ota.Registry,
	box *secret.Box,
	archive s3.S3,
	queue queue.Enqueuer,
	tx postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
) Channel {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		inventory: inventory,
		bookings:  bookings,
		providers: providers,
		box:       box,
		archive:   archive,
		queue:     queue,
		tx:        tx,
		cfg:       cfg,
		otel:      otel,
	}
}

// NewCredentialBox builds the box channel credentials are sealed with.
func NewCredentialBox(cfg *config.Config) (*secret.Box, error) {
	box, err := secret.New(cfg.Channel.CredentialSecret, CredentialPurpose)
	if err != nil {
		return nil, fmt.Errorf("failed to init credential box: %w", err)
	}

	return box, nil
}

func credentialAAD(hotelID, channel string) []byte {
	return []byte(hotelID + ":" + channel)
}

func (s *serviceImpl) Connect(ctx context.Context, hotelID string, req dto.ConnectRequest) (res dto.ConnectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.Connect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider, err := s.providers.Provider(req.Channel)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("channel %s is not configured", req.Channel))
	}

	creds := ota.Credentials{APIKey: req.APIKey, ExternalHotelID: req.ExternalHotelID}

	if err = provider.ValidateCredentials(ctx, creds); err != nil {
		if errors.Is(err, ota.ErrInvalidCredentials) {
			return res, failure.BadRequestFromString("channel rejected the credentials")
		}

		return res, failure.ChannelSyncError(err)
	}

	plain, err := json.Marshal(creds)
	if err != nil {
		return res, fmt.Errorf("failed to encode credentials: %w", err)
	}

	sealed, err := s.box.Seal(plain, credentialAAD(hotelID, req.Channel))
	if err != nil {
		log.Error().Err(err).Msg("failed to seal channel credentials")

		return res, fmt.Errorf("failed to seal credentials: %w", err)
	}

	filter := shared.FilterByFields(model.ConnectionTableName, map[string]any{
		model.FieldHotelID: hotelID,
		model.FieldChannel: req.Channel,
	})

	existing, err := s.repo.GetConnection(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get channel connection")

		return res, fmt.Errorf("failed to get channel connection: %w", err)
	}

	now := timezone.Now()
	who := actor.FromContext(ctx).ID

	conn := existing
	conn.ExternalHotelID = req.ExternalHotelID
	conn.Credentials = sealed
	conn.Active = true
	conn.SyncStatus = model.SyncStatusIdle
	conn.LastError = nil

	if existing.ID == constant.Empty {
		conn.ID = uuid.NewString()
		conn.HotelID = hotelID
		conn.Channel = req.Channel
		conn.Metadata = gModel.NewMetadata(who, now)

		err = s.repo.InsertConnection(ctx, conn)
	} else {
		conn.ModifiedAt, conn.ModifiedBy = now, who

		err = s.repo.UpdateConnection(ctx, map[string]any{
			model.FieldExternalHotelID: conn.ExternalHotelID,
			model.FieldCredentials:     conn.Credentials,
			model.FieldActive:          true,
			model.FieldSyncStatus:      model.SyncStatusIdle,
			model.FieldLastError:       nil,
			constant.FieldModifiedAt:   now,
			constant.FieldModifiedBy:   who,
		}, shared.FilterByID(conn.ID, model.FieldID, model.ConnectionTableName))
	}

	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("channel", req.Channel).Msg("failed to save channel connection")

		return res, fmt.Errorf("failed to save channel connection: %w", err)
	}

	log.Info().Str("connection_id", conn.ID).Str("hotel_id", hotelID).Str("channel", req.Channel).Msg("channel connected")

	res.FromModel(conn)

	return res, nil
}

func (s *serviceImpl) Disconnect(ctx context.Context, hotelID, connectionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.Disconnect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conn, err := s.owned(ctx, hotelID, connectionID)
	if err != nil {
		return err
	}

	err = s.repo.UpdateConnection(ctx, map[string]any{
		model.FieldActive:        false,
		model.FieldSyncStatus:    model.SyncStatusIdle,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor.FromContext(ctx).ID,
	}, shared.FilterByID(conn.ID, model.FieldID, model.ConnectionTableName))
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to disconnect channel")

		return fmt.Errorf("failed to disconnect channel: %w", err)
	}

	log.Info().Str("connection_id", connectionID).Msg("channel disconnected")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string) (res []dto.ConnectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetConnections(ctx, shared.FilterByID(hotelID, model.FieldHotelID, model.ConnectionTableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get channel connections")

		return res, fmt.Errorf("failed to get channel connections: %w", err)
	}

	res = make([]dto.ConnectionResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res, nil
}

func (s *serviceImpl) GetMappings(ctx context.Context, hotelID, connectionID string) (res []dto.MappingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.GetMappings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.owned(ctx, hotelID, connectionID); err != nil {
		return res, err
	}

	models, err := s.repo.GetMappings(ctx, connectionID)
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to get room mappings")

		return res, fmt.Errorf("failed to get room mappings: %w", err)
	}

	return dto.MappingsFromModels(models), nil
}

func (s *serviceImpl) ReplaceMappings(ctx context.Context, hotelID, connectionID string, req dto.ReplaceMappingsRequest) (res []dto.MappingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.ReplaceMappings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.owned(ctx, hotelID, connectionID); err != nil {
		return res, err
	}

	now := timezone.Now()
	seen := make(map[string]bool, len(req.Mappings))
	mappings := make([]model.Mapping, 0, len(req.Mappings))

	for _, m := range req.Mappings {
		if seen[m.RoomID] {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %s is mapped twice", m.RoomID))
		}

		seen[m.RoomID] = true

		if _, err = s.rooms.GetForHotel(ctx, hotelID, m.RoomID); err != nil {
			return res, err //nolint:wrapcheck
		}

		mappings = append(mappings, model.Mapping{
			ID:             uuid.NewString(),
			ConnectionID:   connectionID,
			RoomID:         m.RoomID,
			ExternalRoomID: m.ExternalRoomID,
			RatePlanID:     m.RatePlanID,
			CreatedAt:      now,
			CreatedBy:      actor.FromContext(ctx).ID,
		})
	}

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		return s.repo.ReplaceMappingsTx(ctx, sqltx, connectionID, mappings) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to replace room mappings")

		return res, fmt.Errorf("failed to replace room mappings: %w", err)
	}

	log.Info().Str("connection_id", connectionID).Int("mappings", len(mappings)).Msg("room mappings replaced")

	return dto.MappingsFromModels(mappings), nil
}

func (s *serviceImpl) EnqueueSync(ctx context.Context, hotelID, connectionID, kind string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.EnqueueSync")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conn, err := s.owned(ctx, hotelID, connectionID)
	if err != nil {
		return err
	}

	if !conn.Active {
		return failure.InvalidState("connection %s is inactive", connectionID) // nolint:wrapcheck
	}

	return s.enqueue(ctx, kind, conn.ID)
}

func (s *serviceImpl) EnqueueForHotel(ctx context.Context, hotelID, kind string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.EnqueueForHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conns, err := s.repo.GetConnections(ctx, shared.FilterByFields(model.ConnectionTableName, map[string]any{
		model.FieldHotelID: hotelID,
		model.FieldActive:  true,
	}))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get channel connections")

		return fmt.Errorf("failed to get channel connections: %w", err)
	}

	var errs []error

	for _, conn := range conns {
		if err := s.enqueue(ctx, kind, conn.ID); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *serviceImpl) EnqueueAll(ctx context.Context) (queued int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.EnqueueAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conns, err := s.repo.GetConnections(ctx, shared.FilterByFields(model.ConnectionTableName, map[string]any{
		model.FieldActive: true,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active channel connections")

		return 0, fmt.Errorf("failed to get active channel connections: %w", err)
	}

	var errs []error

	for _, conn := range conns {
		for _, kind := range []string{task.KindPush, task.KindPull} {
			if err := s.enqueue(ctx, kind, conn.ID); err != nil {
				errs = append(errs, err)

				continue
			}

			queued++
		}
	}

	return queued, errors.Join(errs...)
}

// enqueue treats an already-pending task for the connection as success.
func (s *serviceImpl) enqueue(ctx context.Context, kind, connectionID string) error {
	t, opts, err := task.New(kind, connectionID, s.cfg)
	if err != nil {
		return failure.BadRequest(err)
	}

	_, err = s.queue.EnqueueContext(ctx, t, opts...)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		log.Debug().Str("connection_id", connectionID).Str("kind", kind).Msg("sync already queued")

		return nil
	}

	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Str("kind", kind).Msg("failed to enqueue channel sync")

		return fmt.Errorf("failed to enqueue channel sync: %w", err)
	}

	log.Info().Str("connection_id", connectionID).Str("kind", kind).Msg("channel sync queued")

	return nil
}

func (s *serviceImpl) ListConflicts(ctx context.Context, hotelID, status string, params gDto.QueryParams) (res dto.GetConflictsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.ListConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := map[string]any{model.FieldHotelID: hotelID}
	if status != constant.Empty {
		fields[model.FieldStatus] = status
	}

	filter := shared.FilterByFields(model.ConflictTableName, fields)

	total, err := s.repo.CountConflicts(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count channel conflicts")

		return res, fmt.Errorf("failed to count channel conflicts: %w", err)
	}

	models, err := s.repo.GetConflicts(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get channel conflicts")

		return res, fmt.Errorf("failed to get channel conflicts: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// ResolveConflict records the human decision; the booking side is handled through the booking routes.
func (s *serviceImpl) ResolveConflict(ctx context.Context, hotelID, conflictID string, req dto.ResolveConflictRequest) (res dto.ConflictResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.ResolveConflict")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByFields(model.ConflictTableName, map[string]any{
		model.FieldID:      conflictID,
		model.FieldHotelID: hotelID,
	})

	conflict, err := s.repo.GetConflict(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("conflict_id", conflictID).Msg("failed to get channel conflict")

		return res, fmt.Errorf("failed to get channel conflict: %w", err)
	}

	if conflict.ID == constant.Empty {
		return res, failure.NotFound("channel conflict not found") // nolint:wrapcheck
	}

	if conflict.Status == model.ConflictStatusResolved {
		return res, failure.InvalidState("conflict is already resolved") // nolint:wrapcheck
	}

	now := timezone.Now()
	who := actor.FromContext(ctx).ID

	conflict.Status = model.ConflictStatusResolved
	conflict.ResolvedBy, conflict.ResolvedAt = &who, &now
	conflict.ResolutionNote = req.Note

	err = s.repo.UpdateConflict(ctx, map[string]any{
		model.FieldStatus:         conflict.Status,
		model.FieldResolvedBy:     who,
		model.FieldResolvedAt:     now,
		model.FieldResolutionNote: req.Note,
	}, filter)
	if err != nil {
		log.Error().Err(err).Str("conflict_id", conflictID).Msg("failed to resolve channel conflict")

		return res, fmt.Errorf("failed to resolve channel conflict: %w", err)
	}

	res.FromModel(conflict)

	return res, nil
}

// owned loads a connection and hides connections of other hotels.
func (s *serviceImpl) owned(ctx context.Context, hotelID, connectionID string) (model.Connection, error) {
	conn, err := s.load(ctx, connectionID)
	if err != nil {
		return conn, err
	}

	if conn.HotelID != hotelID {
		return model.Connection{}, failure.NotFound("channel connection not found") // nolint:wrapcheck
	}

	return conn, nil
}

func (s *serviceImpl) load(ctx context.Context, connectionID string) (model.Connection, error) {
	conn, err := s.repo.GetConnection(ctx, shared.FilterByID(connectionID, model.FieldID, model.ConnectionTableName))
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to get channel connection")

		return conn, fmt.Errorf("failed to get channel connection: %w", err)
	}

	if conn.ID == constant.Empty {
		return conn, failure.NotFound("channel connection not found") // nolint:wrapcheck
	}

	return conn, nil
}
