package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/channel/model"
	"stayledger/shared"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	gRepo "stayledger/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicateConflict is returned when a reservation already has a logged conflict.
var ErrDuplicateConflict = errors.New("channel conflict already logged")

type Channel interface {
	InsertConnection(ctx context.Context, m model.Connection) error
	GetConnection(ctx context.Context, filter gDto.FilterGroup) (model.Connection, error)
	GetConnections(ctx context.Context, filter gDto.FilterGroup) ([]model.Connection, error)
	UpdateConnection(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	GetMappings(ctx context.Context, connectionID string) ([]model.Mapping, error)
	ReplaceMappingsTx(ctx context.Context, sqltx *sqlx.Tx, connectionID string, mappings []model.Mapping) error

	InsertConflict(ctx context.Context, m model.Conflict) error
	GetConflict(ctx context.Context, filter gDto.FilterGroup) (model.Conflict, error)
	GetConflicts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Conflict, error)
	CountConflicts(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateConflict(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	connections gRepo.Repository[model.Connection]
	mappings    gRepo.Repository[model.Mapping]
	conflicts   gRepo.Repository[model.Conflict]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Channel {
	return &repositoryImpl{
		connections: gRepo.NewRepository[model.Connection](model.ConnectionEntityName, model.ConnectionTableName, model.FieldID, db, otel),
		mappings:    gRepo.NewRepository[model.Mapping](model.MappingEntityName, model.MappingTableName, model.FieldID, db, otel),
		conflicts:   gRepo.NewRepository[model.Conflict](model.ConflictEntityName, model.ConflictTableName, model.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (r *repositoryImpl) InsertConnection(ctx context.Context, m model.Connection) error {
	return r.connections.Insert(ctx, m) //nolint:wrapcheck
}

func (r *repositoryImpl) GetConnection(ctx context.Context, filter gDto.FilterGroup) (model.Connection, error) {
	return r.connections.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetConnections(ctx context.Context, filter gDto.FilterGroup) ([]model.Connection, error) {
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.connections.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateConnection(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.connections.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetMappings(ctx context.Context, connectionID string) ([]model.Mapping, error) {
	return r.mappings.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(connectionID, model.FieldConnectionID, model.MappingTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ReplaceMappingsTx(ctx context.Context, sqltx *sqlx.Tx, connectionID string, mappings []model.Mapping) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".channel.ReplaceMappingsTx")
	defer scope.End()

	if err := r.mappings.DeleteTx(ctx, sqltx, shared.FilterByID(connectionID, model.FieldConnectionID, model.MappingTableName)); err != nil {
		return fmt.Errorf("failed to clear room mappings: %w", err)
	}

	if len(mappings) == 0 {
		return nil
	}

	return r.mappings.InsertBulkTx(ctx, sqltx, mappings) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertConflict(ctx context.Context, m model.Conflict) error {
	err := r.conflicts.Insert(ctx, m)
	if postgres.IsErrorCode(err, postgres.ErrCodeUniqueViolation) {
		return ErrDuplicateConflict
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) GetConflict(ctx context.Context, filter gDto.FilterGroup) (model.Conflict, error) {
	return r.conflicts.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetConflicts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Conflict, error) {
	return r.conflicts.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountConflicts(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.conflicts.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateConflict(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.conflicts.Update(ctx, req, filter) //nolint:wrapcheck
}
