package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/logger"

	"github.com/jmoiron/sqlx"
)

type Fraud interface {
	// PlatformBookingOnRoomTx reports an active non-walk-in booking on the room overlapping r.
	PlatformBookingOnRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) (bool, error)
	// PlatformBookingForPhoneTx reports a PENDING or CONFIRMED non-walk-in booking for phone
	// at the hotel overlapping r, on any room.
	PlatformBookingForPhoneTx(ctx context.Context, sqltx *sqlx.Tx, hotelID, phone string, r daterange.Range) (bool, error)
}

const queryPlatformBookingOnRoom = `SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE room_id = :room_id
		AND booking_source <> 'WALK_IN'
		AND status NOT IN ('CANCELLED', 'CHECKED_OUT')
		AND check_in < :check_out
		AND check_out > :check_in
)`

const queryPlatformBookingForPhone = `SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE hotel_id = :hotel_id
		AND guest_phone = :phone
		AND booking_source <> 'WALK_IN'
		AND status IN ('PENDING', 'CONFIRMED')
		AND check_in < :check_out
		AND check_out > :check_in
)`

type repositoryImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Fraud {
	return &repositoryImpl{otel: otel}
}

func (r *repositoryImpl) exists(ctx context.Context, sqltx *sqlx.Tx, name, query string, args map[string]any) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".fraud."+name)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", name, err)
	}
	defer stmt.Close()

	var exist bool
	if err := stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return exist, nil
}

func (r *repositoryImpl) PlatformBookingOnRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng daterange.Range) (bool, error) {
	return r.exists(ctx, sqltx, "PlatformBookingOnRoomTx", queryPlatformBookingOnRoom, map[string]any{
		"room_id":   roomID,
		"check_in":  rng.CheckIn,
		"check_out": rng.CheckOut,
	})
}

func (r *repositoryImpl) PlatformBookingForPhoneTx(ctx context.Context, sqltx *sqlx.Tx, hotelID, phone string, rng daterange.Range) (bool, error) {
	return r.exists(ctx, sqltx, "PlatformBookingForPhoneTx", queryPlatformBookingForPhone, map[string]any{
		"hotel_id":  hotelID,
		"phone":     phone,
		"check_in":  rng.CheckIn,
		"check_out": rng.CheckOut,
	})
}
