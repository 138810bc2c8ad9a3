package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/internal/domains/payment/model"
	"stayledger/internal/domains/payment/repository"
	"stayledger/shared"
	"stayledger/shared/cache"
	"stayledger/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheEarnings = "payment:earnings"

type Payment interface {
	Earnings(ctx context.Context, hotelID string) (model.Earnings, error)
	AvailableBalanceTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) (int64, error)
	// InvalidateEarnings drops the cached aggregate after any money-moving write.
	InvalidateEarnings(ctx context.Context, hotelID string)
}

type serviceImpl struct {
	repo  repository.Payment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Payment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Earnings(ctx context.Context, hotelID string) (res model.Earnings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Earnings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheEarnings, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Earnings(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to aggregate earnings")

		return res, fmt.Errorf("failed to aggregate earnings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save earnings to cache")
	}

	return res, nil
}

func (s *serviceImpl) AvailableBalanceTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.AvailableBalanceTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	earnings, err := s.repo.EarningsTx(ctx, sqltx, hotelID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to aggregate earnings")

		return 0, fmt.Errorf("failed to aggregate earnings: %w", err)
	}

	return earnings.AvailableBalance, nil
}

func (s *serviceImpl) InvalidateEarnings(ctx context.Context, hotelID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheEarnings, hotelID)); err != nil {
		log.Warn().Err(err).Str("hotel_id", hotelID).Msg("failed to invalidate earnings cache")
	}
}
