package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"stayledger/config"
	kafkaMocks "stayledger/infras/kafka/mocks"
	otelMocks "stayledger/infras/otel/mocks"
	pgMocks "stayledger/infras/postgres/mocks"
	"stayledger/internal/domains/booking/mocks"
	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/domains/booking/repository"
	"stayledger/internal/domains/booking/service"
	fraudModel "stayledger/internal/domains/fraud/model"
	fraudMocks "stayledger/internal/domains/fraud/service/mocks"
	hotelModel "stayledger/internal/domains/hotel/model"
	hotelMocks "stayledger/internal/domains/hotel/service/mocks"
	inventoryDto "stayledger/internal/domains/inventory/model/dto"
	inventoryMocks "stayledger/internal/domains/inventory/service/mocks"
	paymentMocks "stayledger/internal/domains/payment/service/mocks"
	paymentService "stayledger/internal/domains/payment/service"
	roomMocks "stayledger/internal/domains/room/mocks"
	roomModel "stayledger/internal/domains/room/model"
	userMocks "stayledger/internal/domains/user/mocks"
	userModel "stayledger/internal/domains/user/model"
	userServiceMocks "stayledger/internal/domains/user/service/mocks"
	"stayledger/shared/actor"
	cacheMocks "stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "h-1"
	roomID  = "r-1"
	guestID = "u-1"
	phone   = "+16502530000"
)

type fixture struct {
	svc       service.Booking
	repo      *mocks.MockBooking
	rooms     *roomMocks.MockRoom
	userRepo  *userMocks.MockUser
	users     *userServiceMocks.MockUser
	hotels    *hotelMocks.MockHotel
	inventory *inventoryMocks.MockInventory
	guard     *fraudMocks.MockGuard
	payment   *paymentMocks.MockPayment
	kafka     *kafkaMocks.MockClient
	cache     *cacheMocks.MockRedisCache
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.CommissionRate = "0.10"
	cfg.Booking.PayAtHotelAdvanceRate = "0.20"
	cfg.Booking.NoShowHotelShareRate = "0.50"
	cfg.Booking.FirstBookingDiscount = "0.20"
	cfg.Booking.FirstBookingDiscountCap = 1000
	cfg.Booking.PlatformLoyaltyBonus = 50
	cfg.Kafka.BookingTopic = "booking-events"

	return cfg
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	f := fixture{
		repo:      mocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		users:     userServiceMocks.NewMockUser(ctrl),
		hotels:    hotelMocks.NewMockHotel(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		guard:     fraudMocks.NewMockGuard(ctrl),
		payment:   paymentMocks.NewMockPayment(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	tx := pgMocks.NewMockTransactor(ctrl)
	pgMocks.PassThroughTx(tx)

	f.svc = service.New(f.repo, f.rooms, f.userRepo, f.users, f.hotels, f.inventory, f.guard,
		paymentService.NewCalculator(cfg), f.payment, tx, f.kafka, cfg, f.cache, otelMocks.NewOtel())

	f.hotels.EXPECT().CommissionRate(gomock.Any()).Return(decimal.RequireFromString("0.10")).AnyTimes()

	return f
}

// expectCommit accepts the post-commit cache invalidation and event publishing.
func (f fixture) expectCommit() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.payment.EXPECT().InvalidateEarnings(gomock.Any(), hotelID).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), "booking-events", gomock.Any()).Return(nil).AnyTimes()
}

func guestCtx() context.Context {
	return actor.With(context.Background(), actor.Actor{ID: guestID, Role: constant.RoleGuest})
}

func hotelierCtx() context.Context {
	return actor.With(context.Background(), actor.Actor{ID: "owner-1", Role: constant.RoleHotelier})
}

func today() time.Time {
	return daterange.Today()
}

func day(offset int) string {
	return today().AddDate(0, 0, offset).Format(constant.DateOnlyFormat)
}

func room() roomModel.Room {
	return roomModel.Room{ID: roomID, HotelID: hotelID, BasePrice: 2500, Capacity: 2, Active: true}
}

func directRequest(method string, nights int) dto.CreateDirectRequest {
	return dto.CreateDirectRequest{
		HotelID:       hotelID,
		RoomID:        roomID,
		RangeRequest:  inventoryDto.RangeRequest{CheckIn: day(3), CheckOut: day(3 + nights)},
		Guest:         dto.Guest{GuestName: "Ana", GuestPhone: "+1 650-253-0000", GuestCount: 2},
		PaymentMethod: method,
	}
}

func (f fixture) expectDirectPreconditions(user userModel.User, previousBookings int) {
	f.guard.EXPECT().NormalizePhone("+1 650-253-0000").Return(phone, nil)
	f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
	f.users.EXPECT().Get(gomock.Any(), guestID).Return(user, nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(previousBookings, nil)
}

func (f fixture) expectFreeRoom() {
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
	f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(false, nil)
	f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(false, nil)
}

func (f fixture) captureInsert(t *testing.T, got *model.Booking) {
	t.Helper()

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
			*got = b

			return nil
		})
	f.repo.EXPECT().InsertActivityTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, a model.Activity) error {
			assert.Equal(t, got.ID, a.BookingID)
			assert.Equal(t, model.ActionCreated, a.Action)
			assert.Empty(t, a.FromStatus)

			return nil
		})
}

func TestCreateDirect_PayAtHotelAdvance(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()
	f.expectDirectPreconditions(userModel.User{ID: guestID, PayAtHotelAllowed: true}, 1)
	f.expectFreeRoom()

	var inserted model.Booking
	f.captureInsert(t, &inserted)

	res, err := f.svc.CreateDirect(guestCtx(), directRequest(model.MethodPayAtHotel, 2))
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, inserted.Status)
	assert.Equal(t, model.SourcePlatform, inserted.BookingSource)
	assert.Equal(t, int64(5000), inserted.TotalAmount)
	assert.Equal(t, int64(1000), inserted.BookingFee)
	assert.Equal(t, model.FeeStatusPending, inserted.BookingFeeStatus)
	assert.Equal(t, model.PaymentStatusPending, inserted.PaymentStatus)
	assert.Equal(t, int64(500), inserted.CommissionAmount)
	assert.Equal(t, inserted.TotalAmount-inserted.CommissionAmount, inserted.NetAmount)
	assert.Equal(t, phone, inserted.GuestPhone)
	assert.Equal(t, guestID, *inserted.UserID)

	assert.Equal(t, int64(5000), res.RemainingAmount)
	assert.Equal(t, int64(0), res.AdvancePaid)
}

func TestCreateDirect_WalletCoversTotal(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	f.guard.EXPECT().NormalizePhone(gomock.Any()).Return(phone, nil)
	f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
	f.users.EXPECT().Get(gomock.Any(), guestID).Return(userModel.User{ID: guestID, WalletBalance: 3500}, nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	r := room()
	r.BasePrice = 1500
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
	f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(false, nil)
	f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(false, nil)
	f.userRepo.EXPECT().DebitWalletTx(gomock.Any(), gomock.Any(), guestID, int64(3000)).Return(nil)

	var inserted model.Booking
	f.captureInsert(t, &inserted)

	req := directRequest(model.MethodOnline, 2)
	req.UseWallet = true

	_, err := f.svc.CreateDirect(guestCtx(), req)
	require.NoError(t, err)

	assert.Equal(t, model.MethodWallet, inserted.PaymentMethod)
	assert.Equal(t, model.PaymentStatusPaid, inserted.PaymentStatus)
	assert.Equal(t, model.FeeStatusPaid, inserted.BookingFeeStatus)
	assert.Equal(t, int64(3000), inserted.WalletAmount)
	assert.Equal(t, int64(0), inserted.RemainingAmount())
}

func TestCreateDirect_FirstBookingDiscount(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()
	f.expectDirectPreconditions(userModel.User{ID: guestID}, 0)
	f.expectFreeRoom()

	var inserted model.Booking
	f.captureInsert(t, &inserted)

	_, err := f.svc.CreateDirect(guestCtx(), directRequest(model.MethodOnline, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(10000), inserted.SubtotalAmount)
	assert.Equal(t, int64(1000), inserted.DiscountAmount)
	assert.Equal(t, int64(9000), inserted.TotalAmount)
	assert.Equal(t, int64(9000), inserted.BookingFee)
}

func TestCreateDirect_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		user      userModel.User
		setupMock func(f fixture)
		wantKind  failure.Kind
	}{
		{
			name:   "overlapping active booking",
			method: model.MethodOnline,
			user:   userModel.User{ID: guestID},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
				f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(false, nil)
				f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindInventoryConflict,
		},
		{
			name:   "blocked dates",
			method: model.MethodOnline,
			user:   userModel.User{ID: guestID},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
				f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindInventoryConflict,
		},
		{
			name:   "pay at hotel revoked",
			method: model.MethodPayAtHotel,
			user:   userModel.User{ID: guestID, PayAtHotelAllowed: false},
			setupMock: func(f fixture) {
				f.expectFreeRoom()
			},
			wantKind: failure.KindFraudRejected,
		},
		{
			name:   "room of another hotel",
			method: model.MethodOnline,
			user:   userModel.User{ID: guestID},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: roomID, HotelID: "h-2", Active: true, Capacity: 2}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:   "exclusion constraint race",
			method: model.MethodOnline,
			user:   userModel.User{ID: guestID},
			setupMock: func(f fixture) {
				f.expectFreeRoom()
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(failure.InventoryConflict("room is already booked for the requested dates"))
			},
			wantKind: failure.KindInventoryConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectDirectPreconditions(tt.user, 1)
			tt.setupMock(f)

			_, err := f.svc.CreateDirect(guestCtx(), directRequest(tt.method, 2))
			assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestCreateDirect_PastCheckIn(t *testing.T) {
	f := newFixture(t)

	req := directRequest(model.MethodOnline, 2)
	req.CheckIn, req.CheckOut = day(-2), day(1)

	_, err := f.svc.CreateDirect(guestCtx(), req)
	assert.True(t, failure.IsKind(err, failure.KindBadRequest), "got %v", err)
}

func walkInRequest() dto.CreateWalkInRequest {
	return dto.CreateWalkInRequest{
		RoomID:       roomID,
		RangeRequest: inventoryDto.RangeRequest{CheckIn: day(0), CheckOut: day(2)},
		Guest:        dto.Guest{GuestName: "Budi", GuestPhone: "+1 650-253-0000", GuestCount: 1},
	}
}

func TestCreateWalkIn_OccupiesImmediately(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	f.guard.EXPECT().NormalizePhone(gomock.Any()).Return(phone, nil)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
	f.guard.EXPECT().CheckWalkInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, in fraudModel.WalkInCheck) error {
			assert.Equal(t, phone, in.Phone)
			assert.Equal(t, roomID, in.RoomID)
			assert.Equal(t, 2, in.Range.Nights())

			return nil
		})
	f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(false, nil)
	f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), gomock.Any()).Return(false, nil)

	var inserted model.Booking
	f.captureInsert(t, &inserted)
	f.inventory.EXPECT().SetOccupiedTx(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(nil)

	res, err := f.svc.CreateWalkIn(hotelierCtx(), hotelID, walkInRequest())
	require.NoError(t, err)

	assert.Equal(t, model.StatusCheckedIn, res.Status)
	assert.Equal(t, model.SourceWalkIn, inserted.BookingSource)
	assert.Equal(t, int64(0), inserted.CommissionAmount)
	assert.Equal(t, inserted.TotalAmount, inserted.NetAmount)
	assert.Equal(t, model.CommissionStatusWaived, inserted.CommissionStatus)
	assert.Nil(t, inserted.UserID)
}

func TestCreateWalkIn_GuardRejectsBeforeAnyWrite(t *testing.T) {
	f := newFixture(t)

	f.guard.EXPECT().NormalizePhone(gomock.Any()).Return(phone, nil)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
	f.guard.EXPECT().CheckWalkInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.FraudRejected("%s: room already holds a platform booking", fraudModel.RulePlatformBookingOnRoom))

	_, err := f.svc.CreateWalkIn(hotelierCtx(), hotelID, walkInRequest())
	assert.True(t, failure.IsKind(err, failure.KindFraudRejected), "got %v", err)
	assert.Contains(t, err.Error(), fraudModel.RulePlatformBookingOnRoom)
}

func TestCreateWalkIn_FutureCheckIn(t *testing.T) {
	f := newFixture(t)

	req := walkInRequest()
	req.CheckIn, req.CheckOut = day(1), day(3)

	_, err := f.svc.CreateWalkIn(hotelierCtx(), hotelID, req)
	assert.True(t, failure.IsKind(err, failure.KindBadRequest), "got %v", err)
}

func channelBooking(t *testing.T) dto.ChannelBooking {
	t.Helper()

	r, err := daterange.Parse(day(5), day(7))
	require.NoError(t, err)

	return dto.ChannelBooking{
		HotelID:           hotelID,
		RoomID:            roomID,
		ConnectionID:      "c-1",
		ExternalBookingID: "BK-778",
		Source:            model.SourceBookingCom,
		GuestName:         "Chen",
		GuestPhone:        "not a phone",
		GuestCount:        2,
		Range:             r,
		TotalAmount:       6000,
	}
}

func TestCreateFromChannel_PrepaidWithCommission(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
	f.guard.EXPECT().NormalizePhone("not a phone").Return("", failure.BadRequestFromString("invalid phone"))
	f.expectFreeRoom()

	var inserted model.Booking
	f.captureInsert(t, &inserted)

	res, err := f.svc.CreateFromChannel(actor.With(context.Background(), actor.System), channelBooking(t))
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, model.SourceBookingCom, inserted.BookingSource)
	assert.Equal(t, model.MethodChannel, inserted.PaymentMethod)
	assert.Equal(t, model.PaymentStatusPaid, inserted.PaymentStatus)
	assert.Equal(t, int64(600), inserted.CommissionAmount)
	assert.Equal(t, int64(5400), inserted.NetAmount)
	assert.Empty(t, inserted.GuestPhone)
	assert.Equal(t, "BK-778", *inserted.ExternalBookingID)
}

func TestCreateFromChannel_GuestFieldsFitColumns(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	in := channelBooking(t)
	in.GuestPhone = "+1 (555) 123-4567 ext 89"
	in.GuestName = strings.Repeat("ü", 80)
	in.GuestEmail = strings.Repeat("a", 120) + "@example.com"

	f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
	f.guard.EXPECT().NormalizePhone(in.GuestPhone).Return("", failure.BadRequestFromString("invalid phone"))
	f.expectFreeRoom()

	var inserted model.Booking
	f.captureInsert(t, &inserted)

	_, err := f.svc.CreateFromChannel(actor.With(context.Background(), actor.System), in)
	require.NoError(t, err)

	assert.Empty(t, inserted.GuestPhone)
	assert.Equal(t, strings.Repeat("ü", 50), inserted.GuestName)
	assert.LessOrEqual(t, len(inserted.GuestEmail), 100)
	assert.True(t, utf8.ValidString(inserted.GuestEmail))
}

func TestCreateFromChannel_DuplicateIsReported(t *testing.T) {
	f := newFixture(t)

	f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
	f.guard.EXPECT().NormalizePhone(gomock.Any()).Return("", errors.New("invalid"))
	f.expectFreeRoom()
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateExternal)

	_, err := f.svc.CreateFromChannel(context.Background(), channelBooking(t))
	assert.ErrorIs(t, err, repository.ErrDuplicateExternal)
}

func TestCreateFromChannel_UnknownSource(t *testing.T) {
	f := newFixture(t)

	in := channelBooking(t)
	in.Source = model.SourceWalkIn

	_, err := f.svc.CreateFromChannel(context.Background(), in)
	assert.True(t, failure.IsKind(err, failure.KindBadRequest), "got %v", err)
}

func stay(t *testing.T, in, out string) (time.Time, time.Time) {
	t.Helper()

	r, err := daterange.Parse(in, out)
	require.NoError(t, err)

	return r.CheckIn, r.CheckOut
}

func booking(t *testing.T, status string) model.Booking {
	t.Helper()

	in, out := stay(t, "2025-01-10", "2025-01-12")
	user := guestID

	return model.Booking{
		ID:               "b-1",
		HotelID:          hotelID,
		RoomID:           roomID,
		UserID:           &user,
		CheckIn:          in,
		CheckOut:         out,
		NumberOfNights:   2,
		TotalAmount:      5000,
		CommissionAmount: 500,
		NetAmount:        4500,
		BookingFee:       1000,
		BookingFeeStatus: model.FeeStatusPaid,
		PaymentMethod:    model.MethodPayAtHotel,
		PaymentStatus:    model.PaymentStatusPayAtHotel,
		BookingSource:    model.SourcePlatform,
		CommissionStatus: model.CommissionStatusPending,
		Status:           status,
	}
}

// expectTransition serves b under the row lock and captures the persisted update.
func (f fixture) expectTransition(t *testing.T, b model.Booking, updated *map[string]any) {
	t.Helper()

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(b, nil)

	if updated == nil {
		return
	}

	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
			*updated = req

			return nil
		})
	f.repo.EXPECT().InsertActivityTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, a model.Activity) error {
			assert.Equal(t, b.Status, a.FromStatus)

			return nil
		})
}

func TestConfirm(t *testing.T) {
	loc := dto.Locator{HotelID: hotelID}

	t.Run("pending booking occupies its range", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusPending)
		f.expectTransition(t, b, &updated)
		f.inventory.EXPECT().SetOccupiedTx(gomock.Any(), gomock.Any(), roomID, b.Range()).Return(nil)

		res, err := f.svc.Confirm(hotelierCtx(), loc, "b-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, model.StatusConfirmed, updated[model.FieldStatus])
	})

	t.Run("cancelled booking is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusCancelled), nil)

		_, err := f.svc.Confirm(hotelierCtx(), loc, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})

	t.Run("booking of another hotel", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusPending), nil)

		_, err := f.svc.Confirm(hotelierCtx(), dto.Locator{HotelID: "h-2"}, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
	})
}

func TestCheckIn_PendingIsRejected(t *testing.T) {
	f := newFixture(t)
	f.expectTransition(t, booking(t, model.StatusPending), nil)

	_, err := f.svc.CheckIn(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
	assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
}

func TestCheckOut_ReleasesAndAwardsLoyalty(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	var updated map[string]any
	b := booking(t, model.StatusCheckedIn)
	f.expectTransition(t, b, &updated)
	f.inventory.EXPECT().ReleaseTx(gomock.Any(), gomock.Any(), roomID, b.Range(), "b-1").Return(nil)
	f.userRepo.EXPECT().AwardLoyaltyTx(gomock.Any(), gomock.Any(), guestID, int64(550)).Return(nil)

	res, err := f.svc.CheckOut(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedOut, res.Status)
}

func TestCheckOut_WalkInHasNoLoyalty(t *testing.T) {
	f := newFixture(t)
	f.expectCommit()

	var updated map[string]any
	b := booking(t, model.StatusCheckedIn)
	b.UserID = nil
	b.BookingSource = model.SourceWalkIn
	f.expectTransition(t, b, &updated)
	f.inventory.EXPECT().ReleaseTx(gomock.Any(), gomock.Any(), roomID, gomock.Any(), "b-1").Return(nil)

	_, err := f.svc.CheckOut(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
	require.NoError(t, err)
}

func TestExtend(t *testing.T) {
	loc := dto.Locator{HotelID: hotelID}

	t.Run("conflict in the added window", func(t *testing.T) {
		f := newFixture(t)
		b := booking(t, model.StatusCheckedIn)
		f.expectTransition(t, b, nil)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)

		_, window := b.Range().Extend(2)
		f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, window).Return(false, nil)
		f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, window, "b-1").Return(true, nil)

		_, err := f.svc.Extend(hotelierCtx(), loc, "b-1", 2)
		assert.True(t, failure.IsKind(err, failure.KindInventoryConflict), "got %v", err)
	})

	t.Run("adds nights at base price", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusCheckedIn)
		b.PaymentStatus = model.PaymentStatusPaid
		f.expectTransition(t, b, &updated)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)

		extended, window := b.Range().Extend(2)
		f.inventory.EXPECT().IsBlockedTx(gomock.Any(), gomock.Any(), roomID, window).Return(false, nil)
		f.inventory.EXPECT().HasConflictTx(gomock.Any(), gomock.Any(), roomID, window, "b-1").Return(false, nil)
		f.hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, Active: true}, nil)
		f.inventory.EXPECT().SetOccupiedTx(gomock.Any(), gomock.Any(), roomID, window).Return(nil)

		res, err := f.svc.Extend(hotelierCtx(), loc, "b-1", 2)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), res.TotalAmount)
		assert.Equal(t, 4, res.NumberOfNights)
		assert.Equal(t, extended.CheckOut, updated[model.FieldCheckOut])
		assert.Equal(t, model.PaymentStatusPending, updated[model.FieldPaymentStatus])
		assert.Equal(t, int64(1000), updated[model.FieldCommissionAmount])
	})

	t.Run("confirmed booking cannot extend", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusConfirmed), nil)

		_, err := f.svc.Extend(hotelierCtx(), loc, "b-1", 1)
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})
}

func TestNoShow(t *testing.T) {
	loc := dto.Locator{HotelID: hotelID}

	t.Run("forfeits and splits the advance", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusConfirmed)
		f.expectTransition(t, b, &updated)
		f.inventory.EXPECT().ReleaseTx(gomock.Any(), gomock.Any(), roomID, b.Range(), "b-1").Return(nil)
		f.guard.EXPECT().ApplyNoShowTx(gomock.Any(), gomock.Any(), guestID).Return(nil)

		res, err := f.svc.NoShow(hotelierCtx(), loc, "b-1")
		require.NoError(t, err)

		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.Equal(t, model.ReasonNoShow, *res.CancellationReason)
		assert.Equal(t, int64(500), res.HotelShare)
		assert.Equal(t, int64(500), res.PlatformShare)
		assert.Equal(t, res.HotelShare+res.PlatformShare, res.AdvancePaid)
	})

	t.Run("before the check-in date", func(t *testing.T) {
		f := newFixture(t)

		b := booking(t, model.StatusConfirmed)
		b.CheckIn, b.CheckOut = stay(t, day(2), day(4))
		f.expectTransition(t, b, nil)

		_, err := f.svc.NoShow(hotelierCtx(), loc, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})

	t.Run("pending booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusPending), nil)

		_, err := f.svc.NoShow(hotelierCtx(), loc, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})
}

func TestCancel(t *testing.T) {
	t.Run("pending booking does not touch the ledger", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		f.expectTransition(t, booking(t, model.StatusPending), &updated)

		res, err := f.svc.Cancel(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1", dto.CancelRequest{})
		require.NoError(t, err)
		assert.Equal(t, model.ReasonHotelCancelled, *res.CancellationReason)
	})

	t.Run("guest cancelling a confirmed booking releases it", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusConfirmed)
		f.expectTransition(t, b, &updated)
		f.inventory.EXPECT().ReleaseTx(gomock.Any(), gomock.Any(), roomID, b.Range(), "b-1").Return(nil)

		res, err := f.svc.Cancel(guestCtx(), dto.Locator{UserID: guestID}, "b-1",
			dto.CancelRequest{Reason: model.ReasonHotelCancelled})
		require.NoError(t, err)
		assert.Equal(t, model.ReasonGuestCancelled, *res.CancellationReason)
	})

	t.Run("wallet share is returned to the guest", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusPending)
		b.PaymentMethod = model.MethodWallet
		b.WalletAmount = 5000
		f.expectTransition(t, b, &updated)
		f.userRepo.EXPECT().CreditWalletTx(gomock.Any(), gomock.Any(), guestID, int64(5000)).Return(nil)

		_, err := f.svc.Cancel(guestCtx(), dto.Locator{UserID: guestID}, "b-1", dto.CancelRequest{})
		require.NoError(t, err)
	})

	t.Run("failed refund aborts the cancellation", func(t *testing.T) {
		f := newFixture(t)

		b := booking(t, model.StatusPending)
		b.WalletAmount = 1200
		f.expectTransition(t, b, nil)
		f.userRepo.EXPECT().CreditWalletTx(gomock.Any(), gomock.Any(), guestID, int64(1200)).Return(errors.New("db down"))

		_, err := f.svc.Cancel(guestCtx(), dto.Locator{UserID: guestID}, "b-1", dto.CancelRequest{})
		assert.Error(t, err)
	})

	t.Run("checked-in booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusCheckedIn), nil)

		_, err := f.svc.Cancel(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1", dto.CancelRequest{})
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})

	t.Run("another guest's booking", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusPending), nil)

		_, err := f.svc.Cancel(guestCtx(), dto.Locator{UserID: "u-2"}, "b-1", dto.CancelRequest{})
		assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
	})
}

func TestRecordAdvancePayment(t *testing.T) {
	t.Run("pay at hotel advance", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()

		var updated map[string]any
		b := booking(t, model.StatusPending)
		b.BookingFeeStatus = model.FeeStatusPending
		b.PaymentStatus = model.PaymentStatusPending
		f.expectTransition(t, b, &updated)

		res, err := f.svc.RecordAdvancePayment(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
		require.NoError(t, err)
		assert.Equal(t, model.FeeStatusPaid, res.BookingFeeStatus)
		assert.Equal(t, model.PaymentStatusPayAtHotel, res.PaymentStatus)
		assert.Equal(t, int64(4000), res.RemainingAmount)
	})

	t.Run("already paid", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransition(t, booking(t, model.StatusConfirmed), nil)

		_, err := f.svc.RecordAdvancePayment(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
	})
}

func TestCollectPayment_IsIdempotent(t *testing.T) {
	loc := dto.Locator{HotelID: hotelID}

	f := newFixture(t)
	f.expectCommit()

	var updated map[string]any
	b := booking(t, model.StatusCheckedIn)
	f.expectTransition(t, b, &updated)

	amount, err := f.svc.CollectPayment(hotelierCtx(), loc, "b-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), amount)
	assert.Equal(t, model.PaymentStatusPaid, updated[model.FieldPaymentStatus])

	b.PaymentStatus = model.PaymentStatusPaid
	f.expectTransition(t, b, nil)

	_, err = f.svc.CollectPayment(hotelierCtx(), loc, "b-1")
	assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
}

func TestCollectPayment_NothingRemaining(t *testing.T) {
	f := newFixture(t)

	b := booking(t, model.StatusCheckedIn)
	b.BookingFee = b.TotalAmount
	b.PaymentStatus = model.PaymentStatusPending
	f.expectTransition(t, b, nil)

	_, err := f.svc.CollectPayment(hotelierCtx(), dto.Locator{HotelID: hotelID}, "b-1")
	assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
}

func TestGet(t *testing.T) {
	t.Run("cache miss loads and caches", func(t *testing.T) {
		f := newFixture(t)
		b := booking(t, model.StatusConfirmed)

		f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(b, nil)
		f.cache.EXPECT().Save(gomock.Any(), "booking:get:b-1", b, gomock.Any()).Return(nil)

		res, err := f.svc.Get(context.Background(), dto.Locator{HotelID: hotelID}, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-10", res.CheckIn)
		assert.Equal(t, int64(4000), res.RemainingAmount)
	})

	t.Run("foreign hotel gets not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any) error {
				*(v.(*model.Booking)) = booking(t, model.StatusConfirmed)

				return nil
			})

		_, err := f.svc.Get(context.Background(), dto.Locator{HotelID: "h-2"}, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), dto.Locator{HotelID: hotelID}, "b-1")
		assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
	})
}
