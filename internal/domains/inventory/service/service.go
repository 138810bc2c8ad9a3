package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/inventory/model"
	"stayledger/internal/domains/inventory/model/dto"
	"stayledger/internal/domains/inventory/repository"
	roomModel "stayledger/internal/domains/room/model"
	roomRepo "stayledger/internal/domains/room/repository"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const maxRangeNights = 366

// Inventory is the per-room, per-date ledger. The *Tx operations join the
// caller's transaction so ledger and booking writes commit together.
type Inventory interface {
	SetOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) error
	// ReleaseTx frees the range, keeping BLOCKED rows and dates still held by another booking.
	ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, bookingID string) error
	IsBlockedTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) (bool, error)
	HasConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, excludeBookingID string) (bool, error)

	Block(ctx context.Context, roomID string, r daterange.Range, note string) error
	Unblock(ctx context.Context, roomID string, r daterange.Range) error
	Availability(ctx context.Context, roomID string, r daterange.Range) ([]dto.DayAvailability, error)
	// Rebuild recomputes ledger rows from bookings after a detected divergence.
	Rebuild(ctx context.Context, roomID string, r daterange.Range) error
}

type serviceImpl struct {
	repo     repository.Inventory
	roomRepo roomRepo.Room
	tx       postgres.Transactor
	otel     otel.Otel
}

func New(repo repository.Inventory, roomRepo roomRepo.Room, tx postgres.Transactor, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		tx:       tx,
		otel:     otel,
	}
}

func (s *serviceImpl) SetOccupiedTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.SetOccupiedTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.OccupyTx(ctx, sqltx, roomID, r.Dates(), actor.FromContext(ctx).ID); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("range", r.String()).Msg("failed to occupy inventory")

		return fmt.Errorf("failed to occupy inventory: %w", err)
	}

	return nil
}

func (s *serviceImpl) ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ReleaseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.ReconcileTx(ctx, sqltx, roomID, r.Dates(), bookingID, actor.FromContext(ctx).ID); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("range", r.String()).Msg("failed to release inventory")

		return fmt.Errorf("failed to release inventory: %w", err)
	}

	return nil
}

func (s *serviceImpl) IsBlockedTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range) (bool, error) {
	blocked, err := s.repo.HasBlockTx(ctx, sqltx, roomID, r)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked dates: %w", err)
	}

	return blocked, nil
}

func (s *serviceImpl) HasConflictTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, r daterange.Range, excludeBookingID string) (bool, error) {
	conflict, err := s.repo.HasConflictTx(ctx, sqltx, roomID, r, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check booking conflict: %w", err)
	}

	return conflict, nil
}

// lockRoom serializes ledger maintenance with booking creation on the same room.
func (s *serviceImpl) lockRoom(ctx context.Context, sqltx *sqlx.Tx, roomID string) error {
	room, err := s.roomRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Block(ctx context.Context, roomID string, r daterange.Range, note string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkRange(r); err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		if err := s.lockRoom(ctx, sqltx, roomID); err != nil {
			return err
		}

		conflict, err := s.HasConflictTx(ctx, sqltx, roomID, r, constant.Empty)
		if err != nil {
			return err
		}

		if conflict {
			return failure.InventoryConflict("room %s has an active booking in %s", roomID, r) // nolint:wrapcheck
		}

		return s.repo.BlockTx(ctx, sqltx, roomID, r.Dates(), note, actor.FromContext(ctx).ID) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("range", r.String()).Msg("failed to block inventory")

		return err
	}

	log.Info().Str("room_id", roomID).Str("range", r.String()).Msg("inventory blocked")

	return nil
}

func (s *serviceImpl) Unblock(ctx context.Context, roomID string, r daterange.Range) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Unblock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkRange(r); err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		if err := s.lockRoom(ctx, sqltx, roomID); err != nil {
			return err
		}

		return s.repo.UnblockTx(ctx, sqltx, roomID, r, actor.FromContext(ctx).ID) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("range", r.String()).Msg("failed to unblock inventory")

		return err
	}

	return nil
}

func (s *serviceImpl) Availability(ctx context.Context, roomID string, r daterange.Range) (res []dto.DayAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkRange(r); err != nil {
		return nil, err
	}

	rows, err := s.repo.GetRange(ctx, roomID, r)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get inventory rows")

		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	spans, err := s.repo.ActiveSpans(ctx, roomID, r)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get active bookings")

		return nil, fmt.Errorf("failed to get active bookings: %w", err)
	}

	return resolveDays(r, rows, spans), nil
}

func (s *serviceImpl) Rebuild(ctx context.Context, roomID string, r daterange.Range) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Rebuild")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkRange(r); err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		if err := s.lockRoom(ctx, sqltx, roomID); err != nil {
			return err
		}

		return s.repo.ReconcileTx(ctx, sqltx, roomID, r.Dates(), constant.Empty, actor.FromContext(ctx).ID) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("range", r.String()).Msg("failed to rebuild inventory")

		return err
	}

	log.Info().Str("room_id", roomID).Str("range", r.String()).Int("dates", r.Nights()).Msg("inventory rebuilt")

	return nil
}

func checkRange(r daterange.Range) error {
	if r.Nights() > maxRangeNights {
		return failure.BadRequestFromString(fmt.Sprintf("range %s exceeds %d nights", r, maxRangeNights))
	}

	return nil
}

// resolveDays: BLOCKED wins, then any active booking (pending included), else AVAILABLE.
func resolveDays(r daterange.Range, rows []model.RoomInventory, spans []model.Span) []dto.DayAvailability {
	blocked := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Status == model.StatusBlocked {
			blocked[daterange.Day(row.Date).Format(constant.DateOnlyFormat)] = true
		}
	}

	days := make([]dto.DayAvailability, 0, r.Nights())

	for _, date := range r.Dates() {
		day := dto.DayAvailability{Date: date.Format(constant.DateOnlyFormat), Status: model.StatusAvailable}

		switch {
		case blocked[day.Date]:
			day.Status = model.StatusBlocked
		default:
			for _, span := range spans {
				stay := daterange.Range{CheckIn: daterange.Day(span.CheckIn), CheckOut: daterange.Day(span.CheckOut)}
				if stay.Contains(date) {
					day.Status = model.StatusOccupied
					day.BookingID = span.BookingID

					break
				}
			}
		}

		days = append(days, day)
	}

	return days
}
