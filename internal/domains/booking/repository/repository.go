package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/booking/model"
	"stayledger/shared"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	gRepo "stayledger/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicateExternal is returned when a channel booking was already imported.
var ErrDuplicateExternal = errors.New("external booking already imported")

type Booking interface {
	// InsertTx maps the overlap exclusion constraint to InventoryConflict.
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertActivityTx(ctx context.Context, sqltx *sqlx.Tx, activity model.Activity) error
	GetActivities(ctx context.Context, bookingID string) ([]model.Activity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	activities gRepo.Repository[model.Activity]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		activities: gRepo.NewRepository[model.Activity](model.ActivityEntityName, model.ActivityTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case postgres.IsErrorCode(err, postgres.ErrCodeExclusionViolation):
		return failure.InventoryConflict("room is already booked for the requested dates") // nolint:wrapcheck
	case postgres.IsErrorCode(err, postgres.ErrCodeUniqueViolation):
		return fmt.Errorf("%w: %w", ErrDuplicateExternal, err)
	default:
		return err
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, b model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertTx")
	defer scope.End()

	return translate(r.Repository.InsertTx(ctx, sqltx, b))
}

// UpdateTx maps the overlap exclusion constraint to InventoryConflict, which an extension can hit.
func (r *repositoryImpl) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateTx")
	defer scope.End()

	return translate(r.Repository.UpdateTx(ctx, sqltx, req, filter))
}

func (r *repositoryImpl) InsertActivityTx(ctx context.Context, sqltx *sqlx.Tx, activity model.Activity) error {
	return r.activities.InsertTx(ctx, sqltx, activity) //nolint:wrapcheck
}

func (r *repositoryImpl) GetActivities(ctx context.Context, bookingID string) ([]model.Activity, error) {
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.activities.GetAll(ctx, params, shared.FilterByID(bookingID, "booking_id", model.ActivityTableName)) //nolint:wrapcheck
}
