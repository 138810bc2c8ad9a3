package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/internal/domains/hotel/model"
	"stayledger/internal/domains/hotel/repository"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	"stayledger/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cacheGetHotel = "hotel:get"

type Hotel interface {
	// Get returns an active hotel, NotFound otherwise.
	Get(ctx context.Context, hotelID string) (model.Hotel, error)
	// EnsureOwner loads the hotel and checks the actor may act on it.
	EnsureOwner(ctx context.Context, hotelID string, who actor.Actor) (model.Hotel, error)
	CommissionRate(h model.Hotel) decimal.Decimal
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, hotelID string) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		res, err = s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get hotel")

			return res, fmt.Errorf("failed to get hotel: %w", err)
		}

		if res.ID == constant.Empty {
			return res, failure.NotFound("hotel not found") // nolint:wrapcheck
		}

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save hotel to cache")
		}
	}

	if !res.Active {
		return model.Hotel{}, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) EnsureOwner(ctx context.Context, hotelID string, who actor.Actor) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.EnsureOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if res, err = s.Get(ctx, hotelID); err != nil {
		return res, err
	}

	if !who.IsAdmin() && res.OwnerID != who.ID {
		return res, failure.ResourceRestrictedError
	}

	return res, nil
}

func (s *serviceImpl) CommissionRate(h model.Hotel) decimal.Decimal {
	if h.CommissionRate.Valid {
		return h.CommissionRate.Decimal
	}

	return decimal.RequireFromString(s.cfg.Booking.CommissionRate)
}
