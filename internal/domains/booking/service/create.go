package service

import (
	"context"
	"fmt"
	"strings"

	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	fraudModel "stayledger/internal/domains/fraud/model"
	paymentModel "stayledger/internal/domains/payment/model"
	roomModel "stayledger/internal/domains/room/model"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	gModel "stayledger/shared/model"
	"stayledger/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Column widths of bookings.guest_name and bookings.guest_email.
const (
	maxGuestName  = 100
	maxGuestEmail = 100
)

// pricer fills the money fields once the room is locked and returns the wallet amount to debit.
type pricer func(room roomModel.Room, b *model.Booking) (int64, error)

func (s *serviceImpl) CreateDirect(ctx context.Context, req dto.CreateDirectRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateDirect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r, err := req.ToRange()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateStay(r, false); err != nil {
		return res, err
	}

	guestPhone, err := s.guard.NormalizePhone(req.GuestPhone)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	hotel, err := s.hotels.Get(ctx, req.HotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	user, err := s.users.Get(ctx, actor.FromContext(ctx).ID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	first, err := s.isFirstBooking(ctx, user.ID)
	if err != nil {
		return res, err
	}

	booking := s.draft(ctx, req.HotelID, req.RoomID, req.Guest, guestPhone)
	booking.UserID = &user.ID
	booking.CheckIn, booking.CheckOut, booking.NumberOfNights = r.CheckIn, r.CheckOut, r.Nights()
	booking.Status = model.StatusPending
	booking.BookingSource = model.SourcePlatform
	booking.CommissionStatus = model.CommissionStatusPending

	rate := s.hotels.CommissionRate(hotel)

	booking, err = s.create(ctx, booking, func(room roomModel.Room, b *model.Booking) (int64, error) {
		quote, err := s.calc.Quote(paymentModel.QuoteInput{
			Subtotal:          room.BasePrice * int64(b.NumberOfNights),
			Method:            req.PaymentMethod,
			WalletBalance:     user.WalletBalance,
			UseWallet:         req.UseWallet,
			FirstBooking:      first,
			PayAtHotelAllowed: user.PayAtHotelAllowed,
		})
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		s.applyQuote(b, quote, rate)

		return quote.WalletUse, nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CreateWalkIn(ctx context.Context, hotelID string, req dto.CreateWalkInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateWalkIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r, err := req.ToRange()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateStay(r, true); err != nil {
		return res, err
	}

	guestPhone, err := s.guard.NormalizePhone(req.GuestPhone)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := s.draft(ctx, hotelID, req.RoomID, req.Guest, guestPhone)
	booking.CheckIn, booking.CheckOut, booking.NumberOfNights = r.CheckIn, r.CheckOut, r.Nights()
	booking.Status = model.StatusCheckedIn
	booking.BookingSource = model.SourceWalkIn
	booking.PaymentMethod = model.MethodCash
	booking.CommissionStatus = model.CommissionStatusWaived

	booking, err = s.create(ctx, booking, func(room roomModel.Room, b *model.Booking) (int64, error) {
		b.SubtotalAmount = room.BasePrice * int64(b.NumberOfNights)
		b.TotalAmount = b.SubtotalAmount
		b.NetAmount = b.TotalAmount
		b.PaymentStatus = s.calc.PaymentStatus(b.TotalAmount, 0, b.PaymentMethod)

		return 0, nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// CreateFromChannel books a reservation already paid through the OTA.
func (s *serviceImpl) CreateFromChannel(ctx context.Context, in dto.ChannelBooking) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateFromChannel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsChannelSource(in.Source) {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown channel source %q", in.Source))
	}

	if in.Range.Nights() <= 0 {
		return res, failure.BadRequestFromString("channel booking has an empty stay")
	}

	hotel, err := s.hotels.Get(ctx, in.HotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	// An OTA phone that does not parse is dropped; the raw reservation stays with the OTA.
	guestPhone, err := s.guard.NormalizePhone(in.GuestPhone)
	if err != nil {
		log.Warn().Err(err).Str("external_booking_id", in.ExternalBookingID).Msg("dropping unparseable channel guest phone")

		guestPhone = constant.Empty
	}

	guestCount := max(in.GuestCount, 1)

	booking := s.draft(ctx, in.HotelID, in.RoomID, dto.Guest{
		GuestName:  shared.Truncate(strings.TrimSpace(in.GuestName), maxGuestName),
		GuestEmail: shared.Truncate(strings.TrimSpace(in.GuestEmail), maxGuestEmail),
		GuestCount: guestCount,
	}, guestPhone)
	booking.CheckIn, booking.CheckOut, booking.NumberOfNights = in.Range.CheckIn, in.Range.CheckOut, in.Range.Nights()
	booking.Status = model.StatusPending
	booking.BookingSource = in.Source
	booking.PaymentMethod = model.MethodChannel
	booking.CommissionStatus = model.CommissionStatusPending
	booking.ChannelConnectionID = &in.ConnectionID
	booking.ExternalBookingID = &in.ExternalBookingID

	rate := s.hotels.CommissionRate(hotel)

	return s.create(ctx, booking, func(room roomModel.Room, b *model.Booking) (int64, error) {
		b.SubtotalAmount = in.TotalAmount
		if b.SubtotalAmount <= 0 {
			b.SubtotalAmount = room.BasePrice * int64(b.NumberOfNights)
		}

		b.TotalAmount = b.SubtotalAmount
		b.BookingFee = b.TotalAmount
		b.BookingFeeStatus = model.FeeStatusPaid
		b.PaymentStatus = model.PaymentStatusPaid
		b.CommissionAmount = s.calc.Commission(b.TotalAmount, rate, b.BookingSource)
		b.NetAmount = b.TotalAmount - b.CommissionAmount

		return 0, nil
	})
}

func (s *serviceImpl) draft(ctx context.Context, hotelID, roomID string, guest dto.Guest, guestPhone string) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		HotelID:          hotelID,
		RoomID:           roomID,
		GuestName:        guest.GuestName,
		GuestPhone:       guestPhone,
		GuestEmail:       guest.GuestEmail,
		GuestCount:       guest.GuestCount,
		BookingFeeStatus: model.FeeStatusPending,
		PaymentStatus:    model.PaymentStatusPending,
		Metadata:         gModel.NewMetadata(actor.FromContext(ctx).ID, timezone.Now()),
	}
}

func (s *serviceImpl) applyQuote(b *model.Booking, quote paymentModel.Quote, rate decimal.Decimal) {
	b.SubtotalAmount = quote.Subtotal
	b.DiscountAmount = quote.Discount
	b.TotalAmount = quote.Total
	b.BookingFee = quote.BookingFee
	b.WalletAmount = quote.WalletUse
	b.PaymentMethod = quote.Method
	b.CommissionAmount = s.calc.Commission(b.TotalAmount, rate, b.BookingSource)
	b.NetAmount = b.TotalAmount - b.CommissionAmount

	if quote.AdvanceSettled {
		b.BookingFeeStatus = model.FeeStatusPaid
	}

	b.PaymentStatus = s.calc.PaymentStatus(b.TotalAmount, b.AdvancePaid(), b.PaymentMethod)
}

// create runs every check and write of a new booking in one transaction behind the room row lock.
func (s *serviceImpl) create(ctx context.Context, booking model.Booking, price pricer) (model.Booking, error) {
	r := booking.Range()

	err := s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, sqltx, booking.HotelID, booking.RoomID)
		if err != nil {
			return err
		}

		if !room.Active {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if booking.GuestCount > room.Capacity {
			return failure.BadRequestFromString(fmt.Sprintf("room fits at most %d guests", room.Capacity))
		}

		if booking.BookingSource == model.SourceWalkIn {
			err = s.guard.CheckWalkInTx(ctx, sqltx, fraudModel.WalkInCheck{
				HotelID: booking.HotelID,
				RoomID:  booking.RoomID,
				Phone:   booking.GuestPhone,
				Range:   r,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}
		}

		if err = s.ensureFree(ctx, sqltx, booking.RoomID, booking.ID, r); err != nil {
			return err
		}

		walletUse, err := price(room, &booking)
		if err != nil {
			return err
		}

		if walletUse > 0 && booking.UserID != nil {
			if err = s.userRepo.DebitWalletTx(ctx, sqltx, *booking.UserID, walletUse); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		if booking.IsOccupying() {
			if err = s.inventory.SetOccupiedTx(ctx, sqltx, booking.RoomID, r); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return s.recordActivity(ctx, sqltx, booking, constant.Empty, model.ActionCreated, constant.Empty)
	})
	if err != nil {
		if !failure.IsKind(err, failure.KindInventoryConflict) && !failure.IsKind(err, failure.KindFraudRejected) {
			log.Error().Err(err).Str("room_id", booking.RoomID).Str("source", booking.BookingSource).Msg("failed to create booking")
		}

		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("room_id", booking.RoomID).Str("source", booking.BookingSource).
		Str("range", r.String()).Msg("booking created")

	s.afterCommit(ctx, model.ActionCreated, booking)

	return booking, nil
}

// lockRoom takes the room row lock every booking write on the room serializes behind.
func (s *serviceImpl) lockRoom(ctx context.Context, sqltx *sqlx.Tx, hotelID, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty || room.HotelID != hotelID {
		return roomModel.Room{}, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

// ensureFree rejects a range that is blocked or overlaps another active booking.
func (s *serviceImpl) ensureFree(ctx context.Context, sqltx *sqlx.Tx, roomID, excludeBookingID string, r daterange.Range) error {
	blocked, err := s.inventory.IsBlockedTx(ctx, sqltx, roomID, r)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if blocked {
		return failure.InventoryConflict("room is blocked for %s", r.String()) // nolint:wrapcheck
	}

	conflict, err := s.inventory.HasConflictTx(ctx, sqltx, roomID, r, excludeBookingID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if conflict {
		return failure.InventoryConflict("room is already booked for %s", r.String()) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) recordActivity(ctx context.Context, sqltx *sqlx.Tx, b model.Booking, from, action, note string) error {
	err := s.repo.InsertActivityTx(ctx, sqltx, model.Activity{
		ID:         uuid.NewString(),
		BookingID:  b.ID,
		FromStatus: from,
		ToStatus:   b.Status,
		Action:     action,
		ActorID:    actor.FromContext(ctx).ID,
		Note:       note,
		CreatedAt:  timezone.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to record booking activity: %w", err)
	}

	return nil
}
