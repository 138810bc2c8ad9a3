package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/internal/domains/user/model"
	"stayledger/internal/domains/user/model/dto"
	"stayledger/internal/domains/user/repository"
	"stayledger/shared"
	"stayledger/shared/constant"
	"stayledger/shared/failure"

	"github.com/rs/zerolog/log"
)

// User reads are never cached: wallet and trust fields change inside booking transactions.
type User interface {
	Get(ctx context.Context, id string) (model.User, error)
	Profile(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if res.ID == constant.Empty || !res.Active {
		return model.User{}, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context, id string) (res dto.UserResponse, err error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}
