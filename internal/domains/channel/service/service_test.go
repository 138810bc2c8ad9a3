package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"stayledger/config"
	"stayledger/infras/ota"
	otaMocks "stayledger/infras/ota/mocks"
	otelMocks "stayledger/infras/otel/mocks"
	pgMocks "stayledger/infras/postgres/mocks"
	queueMocks "stayledger/infras/queue/mocks"
	s3Mocks "stayledger/infras/s3/mocks"
	bookingModel "stayledger/internal/domains/booking/model"
	bookingDto "stayledger/internal/domains/booking/model/dto"
	bookingRepo "stayledger/internal/domains/booking/repository"
	bookingMocks "stayledger/internal/domains/booking/service/mocks"
	"stayledger/internal/domains/channel/mocks"
	"stayledger/internal/domains/channel/model"
	"stayledger/internal/domains/channel/model/dto"
	"stayledger/internal/domains/channel/repository"
	"stayledger/internal/domains/channel/service"
	"stayledger/internal/domains/channel/task"
	inventoryModel "stayledger/internal/domains/inventory/model"
	inventoryDto "stayledger/internal/domains/inventory/model/dto"
	inventoryMocks "stayledger/internal/domains/inventory/service/mocks"
	roomModel "stayledger/internal/domains/room/model"
	roomMocks "stayledger/internal/domains/room/service/mocks"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"stayledger/shared/secret"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "h-1"
	connID  = "c-1"
	channel = "BOOKING_COM"
)

var creds = ota.Credentials{APIKey: "k-1", ExternalHotelID: "ext-7"}

type fixture struct {
	svc       service.Channel
	box       *secret.Box
	repo      *mocks.MockChannel
	rooms     *roomMocks.MockRoom
	inventory *inventoryMocks.MockInventory
	bookings  *bookingMocks.MockBooking
	registry  *otaMocks.MockRegistry
	provider  *otaMocks.MockProvider
	archive   *s3Mocks.MockS3
	queue     *queueMocks.MockEnqueuer
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Channel.CredentialSecret = "test-master"
	cfg.Channel.Queue = "channel-sync"
	cfg.Channel.MaxRetry = 3
	cfg.Channel.LockTTLSeconds = 60
	cfg.Channel.PushHorizonDays = 30
	cfg.Channel.PullLookbackDays = 7
	cfg.Channel.ConflictArchiveBucket = "conflicts"

	return cfg
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	box, err := service.NewCredentialBox(cfg)
	require.NoError(t, err)

	f := fixture{
		box:       box,
		repo:      mocks.NewMockChannel(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		registry:  otaMocks.NewMockRegistry(ctrl),
		provider:  otaMocks.NewMockProvider(ctrl),
		archive:   s3Mocks.NewMockS3(ctrl),
		queue:     queueMocks.NewMockEnqueuer(ctrl),
	}

	tx := pgMocks.NewMockTransactor(ctrl)
	pgMocks.PassThroughTx(tx)

	f.svc = service.New(f.repo, f.rooms, f.inventory, f.bookings, f.registry, box, f.archive, f.queue, tx, cfg, otelMocks.NewOtel())

	return f
}

func hotelierCtx() context.Context {
	return actor.With(context.Background(), actor.Actor{ID: "owner-1", Role: constant.RoleHotelier})
}

func (f fixture) connection(t *testing.T, active bool) model.Connection {
	t.Helper()

	plain, err := json.Marshal(creds)
	require.NoError(t, err)

	sealed, err := f.box.Seal(plain, []byte(hotelID+":"+channel))
	require.NoError(t, err)

	return model.Connection{
		ID:              connID,
		HotelID:         hotelID,
		Channel:         channel,
		ExternalHotelID: creds.ExternalHotelID,
		Credentials:     sealed,
		Active:          active,
		SyncStatus:      model.SyncStatusIdle,
	}
}

// expectRun loads an active connection and records every status written to it.
func (f fixture) expectRun(t *testing.T) *[]map[string]any {
	t.Helper()

	var updates []map[string]any

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, true), nil)
	f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
	f.repo.EXPECT().UpdateConnection(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			updates = append(updates, req)

			return nil
		}).Times(2)

	return &updates
}

func TestConnect_NewConnectionSealsCredentials(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
	f.provider.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(nil)
	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(model.Connection{}, nil)

	var saved model.Connection

	f.repo.EXPECT().InsertConnection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.Connection) error {
			saved = m

			return nil
		})

	res, err := f.svc.Connect(hotelierCtx(), hotelID, dto.ConnectRequest{
		Channel:         channel,
		ExternalHotelID: creds.ExternalHotelID,
		APIKey:          creds.APIKey,
	})
	require.NoError(t, err)

	assert.True(t, res.Active)
	assert.Equal(t, model.SyncStatusIdle, res.SyncStatus)
	assert.Equal(t, "owner-1", saved.CreatedBy)
	assert.NotContains(t, saved.Credentials, creds.APIKey)

	plain, err := f.box.Open(saved.Credentials, []byte(hotelID+":"+channel))
	require.NoError(t, err)

	var got ota.Credentials
	require.NoError(t, json.Unmarshal(plain, &got))
	assert.Equal(t, creds, got)

	_, err = f.box.Open(saved.Credentials, []byte("h-2:"+channel))
	assert.Error(t, err)
}

func TestConnect_ExistingConnectionIsReactivated(t *testing.T) {
	f := newFixture(t)
	existing := f.connection(t, false)

	f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
	f.provider.EXPECT().ValidateCredentials(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(existing, nil)
	f.repo.EXPECT().UpdateConnection(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, true, req[model.FieldActive])
			assert.Equal(t, model.SyncStatusIdle, req[model.FieldSyncStatus])

			return nil
		})

	res, err := f.svc.Connect(hotelierCtx(), hotelID, dto.ConnectRequest{Channel: channel, ExternalHotelID: "ext-7", APIKey: "k-2"})
	require.NoError(t, err)
	assert.Equal(t, connID, res.ID)
	assert.True(t, res.Active)
}

func TestConnect_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "channel not configured",
			setup: func(f fixture) {
				f.registry.EXPECT().Provider(channel).Return(nil, ota.ErrUnknownChannel)
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "credentials rejected",
			setup: func(f fixture) {
				f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
				f.provider.EXPECT().ValidateCredentials(gomock.Any(), gomock.Any()).Return(ota.ErrInvalidCredentials)
			},
			wantKind: failure.KindBadRequest,
		},
		{
			name: "channel unreachable",
			setup: func(f fixture) {
				f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
				f.provider.EXPECT().ValidateCredentials(gomock.Any(), gomock.Any()).Return(ota.ErrUpstream)
			},
			wantKind: failure.KindChannelSyncError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Connect(hotelierCtx(), hotelID, dto.ConnectRequest{Channel: channel, ExternalHotelID: "ext-7", APIKey: "k-1"})
			assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestDisconnect_OtherHotel(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, true), nil)

	err := f.svc.Disconnect(hotelierCtx(), "h-2", connID)
	assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
}

func TestReplaceMappings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, true), nil)
	f.rooms.EXPECT().GetForHotel(gomock.Any(), hotelID, gomock.Any()).Return(roomModel.Room{ID: "r-1"}, nil).Times(2)
	f.repo.EXPECT().ReplaceMappingsTx(gomock.Any(), gomock.Any(), connID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, m []model.Mapping) error {
			assert.Len(t, m, 2)

			return nil
		})

	res, err := f.svc.ReplaceMappings(hotelierCtx(), hotelID, connID, dto.ReplaceMappingsRequest{Mappings: []dto.MappingRequest{
		{RoomID: "r-1", ExternalRoomID: "DLX"},
		{RoomID: "r-2", ExternalRoomID: "DLX", RatePlanID: "NR"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "NR", res[1].RatePlanID)
}

func TestReplaceMappings_DuplicateRoom(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, true), nil)
	f.rooms.EXPECT().GetForHotel(gomock.Any(), hotelID, "r-1").Return(roomModel.Room{ID: "r-1"}, nil)

	_, err := f.svc.ReplaceMappings(hotelierCtx(), hotelID, connID, dto.ReplaceMappingsRequest{Mappings: []dto.MappingRequest{
		{RoomID: "r-1", ExternalRoomID: "DLX"},
		{RoomID: "r-1", ExternalRoomID: "STD"},
	}})
	assert.True(t, failure.IsKind(err, failure.KindBadRequest), "got %v", err)
}

func TestEnqueueSync(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		queueErr error
		wantKind failure.Kind
	}{
		{name: "queued", active: true},
		{name: "already pending", active: true, queueErr: asynq.ErrDuplicateTask},
		{name: "inactive", active: false, wantKind: failure.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, tt.active), nil)

			if tt.active {
				f.queue.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tk *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
						assert.Equal(t, task.TypePull, tk.Type())

						return &asynq.TaskInfo{}, tt.queueErr
					})
			}

			err := f.svc.EnqueueSync(hotelierCtx(), hotelID, connID, task.KindPull)
			if tt.wantKind != constant.Empty {
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEnqueueAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnections(gomock.Any(), gomock.Any()).
		Return([]model.Connection{{ID: "c-1", Active: true}, {ID: "c-2", Active: true}}, nil)

	var types []string

	f.queue.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tk *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
			types = append(types, tk.Type())

			return &asynq.TaskInfo{}, nil
		}).Times(4)

	n, err := f.svc.EnqueueAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{task.TypePush, task.TypePull, task.TypePush, task.TypePull}, types)
}

func TestEnqueueAll_PartialFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnections(gomock.Any(), gomock.Any()).Return([]model.Connection{{ID: "c-1", Active: true}}, nil)
	f.queue.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(&asynq.TaskInfo{}, nil)
	f.queue.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	n, err := f.svc.EnqueueAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestSyncInventory_PushesPerGroupAndKeepsGoing(t *testing.T) {
	f := newFixture(t)
	updates := f.expectRun(t)

	r, err := daterange.Parse("2025-01-10", "2025-01-12")
	require.NoError(t, err)

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return([]model.Mapping{
		{RoomID: "r-1", ExternalRoomID: "DLX"},
		{RoomID: "r-2", ExternalRoomID: "DLX"},
		{RoomID: "r-3", ExternalRoomID: "STD"},
	}, nil)

	rooms := map[string]roomModel.Room{
		"r-1": {ID: "r-1", BasePrice: 3000, Active: true},
		"r-2": {ID: "r-2", BasePrice: 2500, Active: true},
		"r-3": {ID: "r-3", BasePrice: 1000, Active: true},
	}
	days := map[string][]inventoryDto.DayAvailability{
		"r-1": {{Date: "2025-01-10", Status: inventoryModel.StatusAvailable}, {Date: "2025-01-11", Status: inventoryModel.StatusOccupied}},
		"r-2": {{Date: "2025-01-10", Status: inventoryModel.StatusOccupied}, {Date: "2025-01-11", Status: inventoryModel.StatusOccupied}},
		"r-3": {{Date: "2025-01-10", Status: inventoryModel.StatusBlocked}, {Date: "2025-01-11", Status: inventoryModel.StatusAvailable}},
	}

	f.rooms.EXPECT().GetForHotel(gomock.Any(), hotelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id string) (roomModel.Room, error) { return rooms[id], nil }).Times(3)
	f.inventory.EXPECT().Availability(gomock.Any(), gomock.Any(), r).
		DoAndReturn(func(_ context.Context, id string, _ daterange.Range) ([]inventoryDto.DayAvailability, error) {
			return days[id], nil
		}).Times(3)

	pushed := map[string][]ota.AvailabilityUpdate{}

	f.provider.EXPECT().PushAvailability(gomock.Any(), creds, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ota.Credentials, u []ota.AvailabilityUpdate) error {
			pushed[u[0].ExternalRoomID] = u
			if u[0].ExternalRoomID == "STD" {
				return ota.ErrUpstream
			}

			return nil
		}).Times(2)

	res, err := f.svc.SyncInventory(context.Background(), connID, r)
	assert.True(t, failure.IsKind(err, failure.KindChannelSyncError), "got %v", err)

	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Contains(t, res.LastError, "STD")

	assert.Equal(t, []ota.AvailabilityUpdate{
		{ExternalRoomID: "DLX", Date: "2025-01-10", Open: true, Price: 3000},
		{ExternalRoomID: "DLX", Date: "2025-01-11", Open: false, Price: 2500},
	}, pushed["DLX"])
	assert.Equal(t, []ota.AvailabilityUpdate{
		{ExternalRoomID: "STD", Date: "2025-01-10", Open: false, Price: 1000},
		{ExternalRoomID: "STD", Date: "2025-01-11", Open: true, Price: 1000},
	}, pushed["STD"])

	require.Len(t, *updates, 2)
	assert.Equal(t, model.SyncStatusSyncing, (*updates)[0][model.FieldSyncStatus])
	assert.Equal(t, model.SyncStatusError, (*updates)[1][model.FieldSyncStatus])
}

func TestSyncInventory_InactiveConnection(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(f.connection(t, false), nil)

	_, err := f.svc.SyncInventory(context.Background(), connID, daterange.Range{})
	assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
}

func TestSyncInventory_TamperedCredentials(t *testing.T) {
	f := newFixture(t)
	conn := f.connection(t, true)
	conn.HotelID = "h-2"

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(conn, nil)
	f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
	f.repo.EXPECT().UpdateConnection(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.SyncStatusError, req[model.FieldSyncStatus])

			return nil
		})

	_, err := f.svc.SyncInventory(context.Background(), connID, daterange.Range{})
	assert.True(t, failure.IsKind(err, failure.KindChannelSyncError), "got %v", err)
}

func TestPullBookings_ImportsAndLogsConflicts(t *testing.T) {
	f := newFixture(t)
	updates := f.expectRun(t)
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return([]model.Mapping{
		{RoomID: "r-1", ExternalRoomID: "DLX"},
		{RoomID: "r-2", ExternalRoomID: "DLX"},
	}, nil)

	f.provider.EXPECT().PullReservations(gomock.Any(), creds, since).Return([]ota.Reservation{
		{ExternalBookingID: "BK-C", ExternalRoomID: "DLX", CheckIn: "2025-01-10", CheckOut: "2025-01-12", Status: "CANCELLED"},
		{ExternalBookingID: "BK-E", ExternalRoomID: "DLX", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
		{ExternalBookingID: "BK-U", ExternalRoomID: "SUITE", CheckIn: "2025-01-10", CheckOut: "2025-01-12", Raw: []byte(`{"id":"BK-U"}`)},
		{ExternalBookingID: "BK-1", ExternalRoomID: "DLX", CheckIn: "2025-01-10", CheckOut: "2025-01-12", TotalAmount: 6000},
		{ExternalBookingID: "BK-2", ExternalRoomID: "DLX", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
		{ExternalBookingID: "BK-X", ExternalRoomID: "DLX", CheckIn: "2025-13-40", CheckOut: "2025-01-12"},
	}, nil)

	f.bookings.EXPECT().ExternalExists(gomock.Any(), connID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, ext string) (bool, error) { return ext == "BK-E", nil }).Times(5)

	var booked []string

	f.bookings.EXPECT().CreateFromChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in bookingDto.ChannelBooking) (bookingModel.Booking, error) {
			assert.Equal(t, constant.RoleSystem, actor.FromContext(ctx).Role)
			assert.Equal(t, channel, in.Source)
			assert.Equal(t, connID, in.ConnectionID)

			if in.ExternalBookingID == "BK-1" && in.RoomID == "r-2" {
				booked = append(booked, in.RoomID)

				return bookingModel.Booking{ID: "b-1"}, nil
			}

			return bookingModel.Booking{}, failure.InventoryConflict("room %s is taken", in.RoomID)
		}).Times(4)

	archived := map[string]string{}

	f.archive.EXPECT().PutObject(gomock.Any(), "conflicts", gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, key, _ string, data []byte) error {
			archived[key] = string(data)

			return nil
		}).Times(3)

	reasons := map[string]string{}

	f.repo.EXPECT().InsertConflict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c model.Conflict) error {
			reasons[c.ExternalBookingID] = c.Reason
			assert.Equal(t, model.ConflictStatusOpen, c.Status)
			assert.Equal(t, hotelID, c.HotelID)

			return nil
		}).Times(3)

	res, err := f.svc.PullBookings(context.Background(), connID, since)
	require.NoError(t, err)

	assert.Equal(t, dto.SyncResult{ConnectionID: connID, Kind: task.KindPull, Succeeded: 1, Skipped: 2, Conflicts: 3}, res)
	assert.Equal(t, []string{"r-2"}, booked)
	assert.Equal(t, map[string]string{
		"BK-U": model.ReasonUnmappedRoom,
		"BK-2": model.ReasonInventoryConflict,
		"BK-X": model.ReasonInvalidPayload,
	}, reasons)
	assert.Equal(t, `{"id":"BK-U"}`, archived["channel-conflicts/c-1/BK-U.json"])

	require.Len(t, *updates, 2)
	assert.Equal(t, model.SyncStatusIdle, (*updates)[1][model.FieldSyncStatus])
	assert.Contains(t, (*updates)[1], model.FieldLastPullAt)
}

func TestPullBookings_DuplicatesAreSkipped(t *testing.T) {
	f := newFixture(t)
	f.expectRun(t)

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return([]model.Mapping{{RoomID: "r-1", ExternalRoomID: "DLX"}}, nil)
	f.provider.EXPECT().PullReservations(gomock.Any(), creds, gomock.Any()).Return([]ota.Reservation{
		{ExternalBookingID: "BK-1", ExternalRoomID: "DLX", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
		{ExternalBookingID: "BK-2", ExternalRoomID: "SUITE", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
	}, nil)
	f.bookings.EXPECT().ExternalExists(gomock.Any(), connID, gomock.Any()).Return(false, nil).Times(2)
	f.bookings.EXPECT().CreateFromChannel(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{}, bookingRepo.ErrDuplicateExternal)
	f.archive.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))
	f.repo.EXPECT().InsertConflict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c model.Conflict) error {
			assert.Empty(t, c.ArchiveKey)

			return repository.ErrDuplicateConflict
		})

	res, err := f.svc.PullBookings(context.Background(), connID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	assert.Zero(t, res.Conflicts)
}

func TestPullBookings_UpstreamFailure(t *testing.T) {
	f := newFixture(t)
	updates := f.expectRun(t)

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return(nil, nil)
	f.provider.EXPECT().PullReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ota.ErrUpstream)

	_, err := f.svc.PullBookings(context.Background(), connID, time.Time{})
	assert.True(t, failure.IsKind(err, failure.KindChannelSyncError), "got %v", err)
	assert.Equal(t, model.SyncStatusError, (*updates)[1][model.FieldSyncStatus])
	assert.NotContains(t, (*updates)[1], model.FieldLastPullAt)
}

func TestPullBookings_ReachesBehindWatermark(t *testing.T) {
	lastPull := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	f := newFixture(t)
	conn := f.connection(t, true)
	conn.LastPullAt = &lastPull

	f.repo.EXPECT().GetConnection(gomock.Any(), gomock.Any()).Return(conn, nil)
	f.registry.EXPECT().Provider(channel).Return(f.provider, nil)
	f.repo.EXPECT().UpdateConnection(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return(nil, nil)
	f.provider.EXPECT().PullReservations(gomock.Any(), creds, lastPull.AddDate(0, 0, -7)).Return(nil, nil)

	_, err := f.svc.PullBookings(context.Background(), connID, time.Time{})
	require.NoError(t, err)
}

func TestPullBookings_FirstPullReachesBehindNow(t *testing.T) {
	f := newFixture(t)
	f.expectRun(t)

	var since time.Time

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return(nil, nil)
	f.provider.EXPECT().PullReservations(gomock.Any(), creds, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ota.Credentials, s time.Time) ([]ota.Reservation, error) {
			since = s

			return nil, nil
		})

	before := time.Now()

	_, err := f.svc.PullBookings(context.Background(), connID, time.Time{})
	require.NoError(t, err)
	assert.WithinDuration(t, before.AddDate(0, 0, -7), since, time.Minute)
}

func TestPullBookings_LastErrorKeepsRunes(t *testing.T) {
	f := newFixture(t)
	updates := f.expectRun(t)

	f.repo.EXPECT().GetMappings(gomock.Any(), connID).Return(nil, nil)
	f.provider.EXPECT().PullReservations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New(strings.Repeat("é", 400)))

	res, err := f.svc.PullBookings(context.Background(), connID, time.Time{})
	require.Error(t, err)

	msg, ok := (*updates)[1][model.FieldLastError].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(msg), 500)
	assert.True(t, utf8.ValidString(msg))
	assert.Equal(t, msg, res.LastError)
}

func TestResolveConflict(t *testing.T) {
	tests := []struct {
		name     string
		conflict model.Conflict
		wantKind failure.Kind
	}{
		{name: "open", conflict: model.Conflict{ID: "cf-1", HotelID: hotelID, Status: model.ConflictStatusOpen}},
		{name: "already resolved", conflict: model.Conflict{ID: "cf-1", HotelID: hotelID, Status: model.ConflictStatusResolved}, wantKind: failure.KindInvalidState},
		{name: "missing", conflict: model.Conflict{}, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetConflict(gomock.Any(), gomock.Any()).Return(tt.conflict, nil)

			if tt.wantKind == constant.Empty {
				f.repo.EXPECT().UpdateConflict(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			res, err := f.svc.ResolveConflict(hotelierCtx(), hotelID, "cf-1", dto.ResolveConflictRequest{Note: "moved guest to r-3"})
			if tt.wantKind != constant.Empty {
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.ConflictStatusResolved, res.Status)
			assert.Equal(t, "owner-1", res.ResolvedBy)
			assert.Equal(t, "moved guest to r-3", res.ResolutionNote)
		})
	}
}

func TestListConflicts_FiltersStatus(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 20}

	f.repo.EXPECT().CountConflicts(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetConflicts(gomock.Any(), params, gomock.Any()).
		Return([]model.Conflict{{ID: "cf-1", Status: model.ConflictStatusOpen}}, nil)

	res, err := f.svc.ListConflicts(hotelierCtx(), hotelID, model.ConflictStatusOpen, params)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Conflicts, 1)
}
