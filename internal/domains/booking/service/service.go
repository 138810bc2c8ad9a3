package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/config"
	"stayledger/infras/kafka"
	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/domains/booking/repository"
	fraudService "stayledger/internal/domains/fraud/service"
	hotelService "stayledger/internal/domains/hotel/service"
	inventoryService "stayledger/internal/domains/inventory/service"
	paymentModel "stayledger/internal/domains/payment/model"
	paymentService "stayledger/internal/domains/payment/service"
	roomModel "stayledger/internal/domains/room/model"
	roomRepo "stayledger/internal/domains/room/repository"
	userRepo "stayledger/internal/domains/user/repository"
	userService "stayledger/internal/domains/user/service"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	maxStayNights = 90
)

type Booking interface {
	CreateDirect(ctx context.Context, req dto.CreateDirectRequest) (dto.BookingResponse, error)
	CreateWalkIn(ctx context.Context, hotelID string, req dto.CreateWalkInRequest) (dto.BookingResponse, error)
	// CreateFromChannel wraps repository.ErrDuplicateExternal when the reservation was already imported.
	CreateFromChannel(ctx context.Context, in dto.ChannelBooking) (model.Booking, error)
	ExternalExists(ctx context.Context, connectionID, externalBookingID string) (bool, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)

	Get(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, filter dto.ListFilter) (dto.GetBookingsResponse, error)
	GetActivities(ctx context.Context, loc dto.Locator, bookingID string) ([]dto.ActivityResponse, error)

	Confirm(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	Extend(ctx context.Context, loc dto.Locator, bookingID string, nights int) (dto.BookingResponse, error)
	NoShow(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, loc dto.Locator, bookingID string, req dto.CancelRequest) (dto.BookingResponse, error)
	RecordAdvancePayment(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)
	// CollectPayment settles the remaining amount and returns what was collected.
	CollectPayment(ctx context.Context, loc dto.Locator, bookingID string) (int64, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	userRepo  userRepo.User
	users     userService.User
	hotels    hotelService.Hotel
	inventory inventoryService.Inventory
	guard     fraudService.Guard
	calc      *paymentService.Calculator
	payment   paymentService.Payment
	tx        postgres.Transactor
	kafka     kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	users userService.User,
	hotels hotelService.Hotel,
	inventory inventoryService.Inventory,
	guard fraudService.Guard,
	calc *paymentService.Calculator,
	payment paymentService.Payment,
	tx postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		userRepo:  userRepo,
		users:     users,
		hotels:    hotels,
		inventory: inventory,
		guard:     guard,
		calc:      calc,
		payment:   payment,
		tx:        tx,
		kafka:     kafka,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r, err := req.ToRange()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateStay(r, false); err != nil {
		return res, err
	}

	if _, err = s.hotels.Get(ctx, req.HotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || room.HotelID != req.HotelID || !room.Active {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	user, err := s.users.Get(ctx, actor.FromContext(ctx).ID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	first, err := s.isFirstBooking(ctx, user.ID)
	if err != nil {
		return res, err
	}

	quote, err := s.calc.Quote(paymentModel.QuoteInput{
		Subtotal:          room.BasePrice * int64(r.Nights()),
		Method:            req.PaymentMethod,
		WalletBalance:     user.WalletBalance,
		UseWallet:         req.UseWallet,
		FirstBooking:      first,
		PayAtHotelAllowed: user.PayAtHotelAllowed,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.QuoteResponse{
		RoomID:           room.ID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		NumberOfNights:   r.Nights(),
		PricePerNight:    room.BasePrice,
		FirstBooking:     first,
		Subtotal:         quote.Subtotal,
		Discount:         quote.Discount,
		Total:            quote.Total,
		RequiredAdvance:  quote.RequiredAdvance,
		WalletUse:        quote.WalletUse,
		RemainingAdvance: quote.RemainingAdvance,
		PaymentMethod:    quote.Method,
		FullyPaid:        quote.FullyPaid,
		AdvanceSettled:   quote.AdvanceSettled,
	}, nil
}

func (s *serviceImpl) Get(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, loc, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, loc dto.Locator, bookingID string) (res model.Booking, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		res, err = s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if res.ID == constant.Empty {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save booking to cache")
		}
	}

	if !loc.Matches(res) {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, filter dto.ListFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where := filter.ToFilter(hotelID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllBooking, hotelID), params, where)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, where)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, where)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetActivities(ctx context.Context, loc dto.Locator, bookingID string) (res []dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetActivities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, loc, bookingID); err != nil {
		return res, err
	}

	models, err := s.repo.GetActivities(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking activities")

		return res, fmt.Errorf("failed to get booking activities: %w", err)
	}

	return dto.ActivitiesFromModels(models), nil
}

func (s *serviceImpl) ExternalExists(ctx context.Context, connectionID, externalBookingID string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExternalExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.Exist(ctx, shared.FilterByFields(model.TableName, map[string]any{
		model.FieldChannelConnectionID: connectionID,
		model.FieldExternalBookingID:   externalBookingID,
	}))
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Str("external_id", externalBookingID).Msg("failed to check external booking")

		return false, fmt.Errorf("failed to check external booking: %w", err)
	}

	return exists, nil
}

// isFirstBooking is true when the user holds no booking other than cancelled ones.
func (s *serviceImpl) isFirstBooking(ctx context.Context, userID string) (bool, error) {
	count, err := s.repo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to count user bookings")

		return false, fmt.Errorf("failed to count user bookings: %w", err)
	}

	return count == 0, nil
}

func validateStay(r daterange.Range, walkIn bool) error {
	today := daterange.Today()

	if r.Nights() > maxStayNights {
		return failure.BadRequestFromString(fmt.Sprintf("stay must not exceed %d nights", maxStayNights))
	}

	if r.CheckIn.Before(today) {
		return failure.BadRequestFromString("check-in must not be in the past")
	}

	if walkIn && r.CheckIn.After(today) {
		return failure.BadRequestFromString("walk-in check-in must be today")
	}

	return nil
}

// afterCommit drops stale reads and publishes the lifecycle event. Nothing here can fail the caller.
func (s *serviceImpl) afterCommit(ctx context.Context, action string, b model.Booking) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, b.ID)); err != nil {
		log.Warn().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllBooking, b.HotelID))
	s.payment.InvalidateEarnings(ctx, b.HotelID)

	event := model.NewEvent(action, b, actor.FromContext(ctx).ID, timezone.Now())

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{Key: b.RoomID, Value: event}); err != nil {
		log.Error().Err(err).Str("booking_id", b.ID).Str("event", action).Msg("failed to publish booking event")
	}
}
