package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// mutation applies one transition to the locked booking; it may write the ledger through sqltx.
type mutation func(sqltx *sqlx.Tx, b *model.Booking) error

func expect(b model.Booking, verb string, statuses ...string) error {
	if slices.Contains(statuses, b.Status) {
		return nil
	}

	return failure.InvalidState("cannot %s booking in %s, expected %s", verb, b.Status, strings.Join(statuses, " or ")) // nolint:wrapcheck
}

func (s *serviceImpl) Confirm(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, loc, bookingID, model.ActionConfirmed, constant.Empty, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "confirm", model.StatusPending); err != nil {
			return err
		}

		b.Status = model.StatusConfirmed

		return s.inventory.SetOccupiedTx(ctx, sqltx, b.RoomID, b.Range()) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, loc, bookingID, model.ActionCheckedIn, constant.Empty, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "check in", model.StatusConfirmed); err != nil {
			return err
		}

		b.Status = model.StatusCheckedIn

		return s.inventory.SetOccupiedTx(ctx, sqltx, b.RoomID, b.Range()) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, loc, bookingID, model.ActionCheckedOut, constant.Empty, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "check out", model.StatusCheckedIn); err != nil {
			return err
		}

		b.Status = model.StatusCheckedOut

		if err := s.inventory.ReleaseTx(ctx, sqltx, b.RoomID, b.Range(), b.ID); err != nil {
			return err //nolint:wrapcheck
		}

		if b.UserID == nil {
			return nil
		}

		return s.userRepo.AwardLoyaltyTx(ctx, sqltx, *b.UserID, s.loyaltyPoints(*b)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// loyaltyPoints is floor(total / 10) plus the platform bonus for platform bookings.
func (s *serviceImpl) loyaltyPoints(b model.Booking) int64 {
	points := b.TotalAmount / 10
	if b.BookingSource == model.SourcePlatform {
		points += s.cfg.Booking.PlatformLoyaltyBonus
	}

	return points
}

func (s *serviceImpl) Extend(ctx context.Context, loc dto.Locator, bookingID string, nights int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Extend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if nights < 1 {
		return res, failure.BadRequestFromString("nights must be at least 1")
	}

	note := fmt.Sprintf("extended by %d nights", nights)

	booking, err := s.transition(ctx, loc, bookingID, model.ActionExtended, note, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "extend", model.StatusCheckedIn); err != nil {
			return err
		}

		if b.NumberOfNights+nights > maxStayNights {
			return failure.BadRequestFromString(fmt.Sprintf("stay must not exceed %d nights", maxStayNights))
		}

		room, err := s.lockRoom(ctx, sqltx, b.HotelID, b.RoomID)
		if err != nil {
			return err
		}

		extended, window := b.Range().Extend(nights)

		if err := s.ensureFree(ctx, sqltx, b.RoomID, b.ID, window); err != nil {
			return err
		}

		hotel, err := s.hotels.Get(ctx, b.HotelID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		perNight := s.calc.PerNight(room.BasePrice, b.TotalAmount, b.NumberOfNights)

		b.CheckOut = extended.CheckOut
		b.NumberOfNights += nights
		b.SubtotalAmount += perNight * int64(nights)
		b.TotalAmount += perNight * int64(nights)
		b.CommissionAmount = s.calc.Commission(b.TotalAmount, s.hotels.CommissionRate(hotel), b.BookingSource)
		b.NetAmount = b.TotalAmount - b.CommissionAmount
		b.PaymentStatus = model.PaymentStatusPending

		return s.inventory.SetOccupiedTx(ctx, sqltx, b.RoomID, window) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) NoShow(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.NoShow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, loc, bookingID, model.ActionNoShow, constant.Empty, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "mark no-show on", model.StatusConfirmed); err != nil {
			return err
		}

		if daterange.Today().Before(b.Range().CheckIn) {
			return failure.InvalidState("no-show can only be marked on or after %s", b.CheckIn.Format(constant.DateOnlyFormat)) // nolint:wrapcheck
		}

		split := s.calc.NoShowSplit(b.AdvancePaid())

		s.cancel(b, model.ReasonNoShow)
		b.HotelShare = split.HotelShare
		b.PlatformShare = split.PlatformShare

		if err := s.inventory.ReleaseTx(ctx, sqltx, b.RoomID, b.Range(), b.ID); err != nil {
			return err //nolint:wrapcheck
		}

		if b.UserID == nil {
			return nil
		}

		return s.guard.ApplyNoShowTx(ctx, sqltx, *b.UserID) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel forces GUEST_CANCELLED when the locator is a guest; hotels default to HOTEL_CANCELLED.
func (s *serviceImpl) Cancel(ctx context.Context, loc dto.Locator, bookingID string, req dto.CancelRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reason := req.Reason

	switch {
	case loc.UserID != constant.Empty:
		reason = model.ReasonGuestCancelled
	case reason == constant.Empty:
		reason = model.ReasonHotelCancelled
	case reason != model.ReasonGuestCancelled && reason != model.ReasonHotelCancelled:
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid cancellation reason %q", reason))
	}

	booking, err := s.transition(ctx, loc, bookingID, model.ActionCancelled, req.Note, func(sqltx *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "cancel", model.StatusPending, model.StatusConfirmed); err != nil {
			return err
		}

		wasOccupying := b.IsOccupying()

		s.cancel(b, reason)

		if b.WalletAmount > 0 && b.UserID != nil {
			if err := s.userRepo.CreditWalletTx(ctx, sqltx, *b.UserID, b.WalletAmount); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if !wasOccupying {
			return nil
		}

		return s.inventory.ReleaseTx(ctx, sqltx, b.RoomID, b.Range(), b.ID) //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) cancel(b *model.Booking, reason string) {
	now := timezone.Now()

	b.Status = model.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.CommissionStatus = model.CommissionStatusWaived
}

func (s *serviceImpl) RecordAdvancePayment(ctx context.Context, loc dto.Locator, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RecordAdvancePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, loc, bookingID, model.ActionAdvancePaid, constant.Empty, func(_ *sqlx.Tx, b *model.Booking) error {
		if err := expect(*b, "record advance on", model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn); err != nil {
			return err
		}

		if b.BookingFeeStatus == model.FeeStatusPaid {
			return failure.InvalidState("booking fee is already paid") // nolint:wrapcheck
		}

		if b.BookingFee <= 0 {
			return failure.InvalidState("booking has no advance due") // nolint:wrapcheck
		}

		b.BookingFeeStatus = model.FeeStatusPaid

		if b.PaymentStatus != model.PaymentStatusPaid {
			b.PaymentStatus = s.calc.PaymentStatus(b.TotalAmount, b.AdvancePaid(), b.PaymentMethod)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CollectPayment(ctx context.Context, loc dto.Locator, bookingID string) (amount int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CollectPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = s.transition(ctx, loc, bookingID, model.ActionPaymentCollected, constant.Empty, func(_ *sqlx.Tx, b *model.Booking) error {
		if b.PaymentStatus == model.PaymentStatusPaid {
			return failure.InvalidState("payment is already collected") // nolint:wrapcheck
		}

		remaining := s.calc.Remaining(b.TotalAmount, b.BookingFee, b.BookingFeeStatus)
		if remaining <= 0 {
			return failure.InvalidState("nothing left to collect") // nolint:wrapcheck
		}

		amount = remaining
		b.PaymentStatus = model.PaymentStatusPaid

		return nil
	})
	if err != nil {
		return 0, err
	}

	return amount, nil
}

// transition locks the booking row, applies mutate, then persists the booking and its activity in one transaction.
func (s *serviceImpl) transition(ctx context.Context, loc dto.Locator, bookingID, action, note string, mutate mutation) (model.Booking, error) {
	var booking model.Booking

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	err := s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		b, err := s.repo.GetForUpdateTx(ctx, sqltx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if b.ID == constant.Empty || !loc.Matches(b) {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		from := b.Status

		if err = mutate(sqltx, &b); err != nil {
			return err
		}

		b.ModifiedAt = timezone.Now()
		b.ModifiedBy = actor.FromContext(ctx).ID

		if err = s.repo.UpdateTx(ctx, sqltx, mutableFields(b), filter); err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.recordActivity(ctx, sqltx, b, from, action, note); err != nil {
			return err
		}

		booking = b

		return nil
	})
	if err != nil {
		if failure.GetKind(err) == failure.KindInternal {
			log.Error().Err(err).Str("booking_id", bookingID).Str("action", action).Msg("failed to apply booking transition")
		}

		return booking, err //nolint:wrapcheck
	}

	log.Info().Str("booking_id", booking.ID).Str("action", action).Str("status", booking.Status).Msg("booking transition applied")

	s.afterCommit(ctx, action, booking)

	return booking, nil
}

func mutableFields(b model.Booking) map[string]any {
	return map[string]any{
		model.FieldStatus:             b.Status,
		model.FieldCheckOut:           b.CheckOut,
		model.FieldNumberOfNights:     b.NumberOfNights,
		model.FieldSubtotalAmount:     b.SubtotalAmount,
		model.FieldTotalAmount:        b.TotalAmount,
		model.FieldCommissionAmount:   b.CommissionAmount,
		model.FieldNetAmount:          b.NetAmount,
		model.FieldCancellationReason: b.CancellationReason,
		model.FieldCancelledAt:        b.CancelledAt,
		model.FieldPaymentStatus:      b.PaymentStatus,
		model.FieldBookingFeeStatus:   b.BookingFeeStatus,
		model.FieldCommissionStatus:   b.CommissionStatus,
		model.FieldHotelShare:         b.HotelShare,
		model.FieldPlatformShare:      b.PlatformShare,
		constant.FieldModifiedAt:      b.ModifiedAt,
		constant.FieldModifiedBy:      b.ModifiedBy,
	}
}
