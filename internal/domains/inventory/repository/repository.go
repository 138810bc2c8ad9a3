package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	bookingModel "stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/inventory/model"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/logger"
	"stayledger/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Inventory interface {
	// OccupyTx marks every date OCCUPIED; BLOCKED rows are left untouched.
	OccupyTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, actorID string) error
	// ReconcileTx recomputes non-BLOCKED dates from occupying bookings, ignoring excludeBookingID.
	ReconcileTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, excludeBookingID, actorID string) error
	BlockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, note, actorID string) error
	UnblockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, actorID string) error
	HasBlockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) (bool, error)
	// HasConflictTx reports an active booking overlapping r, other than excludeBookingID.
	HasConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, excludeBookingID string) (bool, error)
	GetRange(ctx context.Context, roomID string, r daterange.Range) ([]model.RoomInventory, error)
	ActiveSpans(ctx context.Context, roomID string, r daterange.Range) ([]model.Span, error)
}

const queryOccupy = `INSERT INTO room_inventory (room_id, date, status, note, created_at, created_by, modified_at, modified_by)
VALUES (:room_id, :date, 'OCCUPIED', '', :at, :actor, :at, :actor)
ON CONFLICT (room_id, date) DO UPDATE SET
	status = EXCLUDED.status,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by
WHERE room_inventory.status <> 'BLOCKED'`

const queryReconcile = `INSERT INTO room_inventory (room_id, date, status, note, created_at, created_by, modified_at, modified_by)
SELECT CAST(:room_id AS varchar), CAST(:date AS date),
	CASE WHEN EXISTS (
		SELECT 1 FROM bookings b
		WHERE b.room_id = :room_id
			AND b.id <> :exclude_id
			AND b.status IN ('CONFIRMED', 'CHECKED_IN')
			AND b.check_in <= CAST(:date AS date)
			AND b.check_out > CAST(:date AS date)
	) THEN 'OCCUPIED' ELSE 'AVAILABLE' END,
	'', CAST(:at AS timestamptz), CAST(:actor AS varchar), CAST(:at AS timestamptz), CAST(:actor AS varchar)
ON CONFLICT (room_id, date) DO UPDATE SET
	status = EXCLUDED.status,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by
WHERE room_inventory.status <> 'BLOCKED'`

const queryBlock = `INSERT INTO room_inventory (room_id, date, status, note, created_at, created_by, modified_at, modified_by)
VALUES (:room_id, :date, 'BLOCKED', :note, :at, :actor, :at, :actor)
ON CONFLICT (room_id, date) DO UPDATE SET
	status = EXCLUDED.status,
	note = EXCLUDED.note,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by`

const queryUnblock = `UPDATE room_inventory SET
	status = CASE WHEN EXISTS (
		SELECT 1 FROM bookings b
		WHERE b.room_id = room_inventory.room_id
			AND b.status IN ('CONFIRMED', 'CHECKED_IN')
			AND b.check_in <= room_inventory.date
			AND b.check_out > room_inventory.date
	) THEN 'OCCUPIED' ELSE 'AVAILABLE' END,
	note = '',
	modified_at = :at,
	modified_by = :actor
WHERE room_id = :room_id AND date >= :check_in AND date < :check_out AND status = 'BLOCKED'`

const queryHasBlock = `SELECT EXISTS (
	SELECT 1 FROM room_inventory
	WHERE room_id = :room_id AND date >= :check_in AND date < :check_out AND status = 'BLOCKED'
)`

const queryHasConflict = `SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE room_id = :room_id
		AND id <> :exclude_id
		AND status NOT IN ('CANCELLED', 'CHECKED_OUT')
		AND check_in < :check_out
		AND check_out > :check_in
)`

const queryGetRange = `SELECT room_id, date, status, note, created_at, created_by, modified_at, modified_by
FROM room_inventory
WHERE room_id = :room_id AND date >= :check_in AND date < :check_out
ORDER BY date`

const queryActiveSpans = `SELECT id, status, check_in, check_out
FROM bookings
WHERE room_id = :room_id
	AND status NOT IN ('CANCELLED', 'CHECKED_OUT')
	AND check_in < :check_out
	AND check_out > :check_in
ORDER BY check_in`

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func rangeArgs(roomID string, r daterange.Range) map[string]any {
	return map[string]any{
		"room_id":   roomID,
		"check_in":  r.CheckIn,
		"check_out": r.CheckOut,
	}
}

// execPerDate runs query once per date; each row write is atomic on its own.
func (r *repositoryImpl) execPerDate(ctx context.Context, sqltx *sqlx.Tx, name, query string, dates []time.Time, args map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory."+name)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	scope.SetAttribute("dates", len(dates))

	if len(dates) == 0 {
		return nil
	}

	stmt, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	args["at"] = timezone.Now()

	for _, date := range dates {
		args["date"] = date

		if _, err := stmt.ExecContext(ctx, args); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to %s %s (%s): %w", name, date.Format(constant.DateOnlyFormat), model.EntityName, err)
		}
	}

	return nil
}

func (r *repositoryImpl) OccupyTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, actorID string) error {
	return r.execPerDate(ctx, sqltx, "OccupyTx", queryOccupy, dates, map[string]any{
		"room_id": roomID,
		"actor":   actorID,
	})
}

func (r *repositoryImpl) ReconcileTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, excludeBookingID, actorID string) error {
	return r.execPerDate(ctx, sqltx, "ReconcileTx", queryReconcile, dates, map[string]any{
		"room_id":    roomID,
		"exclude_id": excludeBookingID,
		"actor":      actorID,
	})
}

func (r *repositoryImpl) BlockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, dates []time.Time, note, actorID string) error {
	return r.execPerDate(ctx, sqltx, "BlockTx", queryBlock, dates, map[string]any{
		"room_id": roomID,
		"note":    note,
		"actor":   actorID,
	})
}

func (r *repositoryImpl) UnblockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng daterange.Range, actorID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.UnblockTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUnblock)

	args := rangeArgs(roomID, rng)
	args["at"] = timezone.Now()
	args["actor"] = actorID

	if _, err := sqltx.NamedExecContext(ctx, queryUnblock, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to unblock dates (%s): %w", model.EntityName, err)
	}

	return nil
}

func (r *repositoryImpl) exists(ctx context.Context, sqltx *sqlx.Tx, query string, args map[string]any) (bool, error) {
	stmt, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	var exist bool
	if err := stmt.GetContext(ctx, &exist, args); err != nil {
		return false, fmt.Errorf("failed to check existence (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (r *repositoryImpl) HasBlockTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng daterange.Range) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.HasBlockTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHasBlock)

	blocked, err := r.exists(ctx, sqltx, queryHasBlock, rangeArgs(roomID, rng))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
	}

	return blocked, err
}

func (r *repositoryImpl) HasConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng daterange.Range, excludeBookingID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.HasConflictTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHasConflict)

	args := rangeArgs(roomID, rng)
	args["exclude_id"] = excludeBookingID

	conflict, err := r.exists(ctx, sqltx, queryHasConflict, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
	}

	return conflict, err
}

func (r *repositoryImpl) GetRange(ctx context.Context, roomID string, rng daterange.Range) ([]model.RoomInventory, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.GetRange")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetRange)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, queryGetRange)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	rows := []model.RoomInventory{}
	if err := stmt.SelectContext(ctx, &rows, rangeArgs(roomID, rng)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return rows, nil
}

func (r *repositoryImpl) ActiveSpans(ctx context.Context, roomID string, rng daterange.Range) ([]model.Span, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ActiveSpans")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryActiveSpans)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, queryActiveSpans)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", bookingModel.EntityName, err)
	}
	defer stmt.Close()

	spans := []model.Span{}
	if err := stmt.SelectContext(ctx, &spans, rangeArgs(roomID, rng)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", bookingModel.EntityName, err)
	}

	return spans, nil
}
