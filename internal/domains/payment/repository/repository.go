package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/payment/model"
	"stayledger/shared/constant"
	"stayledger/shared/logger"
	gRepo "stayledger/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Earnings(ctx context.Context, hotelID string) (model.Earnings, error)
	// EarningsTx reads inside sqltx so payout checks see the same snapshot they insert against.
	EarningsTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) (model.Earnings, error)
}

// Revenue counts CONFIRMED onwards; the payable balance accrues only at check-out.
const queryEarnings = `SELECT
	COALESCE(SUM(total_amount) FILTER (
		WHERE booking_source = 'WALK_IN' AND status IN ('CONFIRMED', 'CHECKED_IN', 'CHECKED_OUT')), 0) AS walk_in_revenue,
	COALESCE(SUM(total_amount) FILTER (
		WHERE booking_source <> 'WALK_IN' AND status IN ('CONFIRMED', 'CHECKED_IN', 'CHECKED_OUT')), 0) AS platform_revenue,
	COALESCE(SUM(commission_amount) FILTER (
		WHERE booking_source <> 'WALK_IN' AND status IN ('CONFIRMED', 'CHECKED_IN', 'CHECKED_OUT')), 0) AS commission_total,
	COALESCE(SUM(commission_amount) FILTER (
		WHERE booking_source <> 'WALK_IN' AND status IN ('CONFIRMED', 'CHECKED_IN', 'CHECKED_OUT')
			AND payment_status = 'PAY_AT_HOTEL' AND commission_status = 'PENDING'), 0) AS commission_owed,
	COALESCE(SUM(CASE WHEN booking_fee_status = 'PAID' THEN booking_fee ELSE 0 END - commission_amount) FILTER (
		WHERE booking_source <> 'WALK_IN' AND status = 'CHECKED_OUT'), 0) AS settled_payable,
	COALESCE(SUM(hotel_share) FILTER (
		WHERE status = 'CANCELLED' AND cancellation_reason = 'NO_SHOW'), 0) AS forfeited_hotel_share,
	(SELECT COALESCE(SUM(amount), 0) FROM payout_requests
		WHERE hotel_id = :hotel_id AND status <> 'REJECTED') AS payout_reserved
FROM bookings
WHERE hotel_id = :hotel_id`

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) earnings(ctx context.Context, prep gRepo.Preparer, hotelID string) (model.Earnings, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.earnings")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryEarnings)

	var res model.Earnings

	stmt, err := prep.PrepareNamedContext(ctx, queryEarnings)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to prepare statement (earnings): %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &res, map[string]any{"hotel_id": hotelID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to aggregate earnings (%s): %w", hotelID, err)
	}

	res.Derive()

	return res, nil
}

func (r *repositoryImpl) Earnings(ctx context.Context, hotelID string) (model.Earnings, error) {
	return r.earnings(ctx, r.db.Read, hotelID)
}

func (r *repositoryImpl) EarningsTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) (model.Earnings, error) {
	return r.earnings(ctx, sqltx, hotelID)
}
