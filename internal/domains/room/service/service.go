package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/internal/domains/room/model"
	"stayledger/internal/domains/room/model/dto"
	"stayledger/internal/domains/room/repository"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/cache"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, hotelID, roomID string) (dto.RoomResponse, error)
	// GetForHotel returns the room model, NotFound when it belongs to another hotel.
	GetForHotel(ctx context.Context, hotelID, roomID string) (model.Room, error)
	Update(ctx context.Context, hotelID, roomID string, req dto.UpdateRoomRequest) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel(hotelID, actor.FromContext(ctx).ID)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to insert room")

		return res, fmt.Errorf("failed to insert room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllRoom, hotelID))

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByFields(model.TableName, map[string]any{model.FieldHotelID: hotelID})
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllRoom, hotelID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, roomID string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.GetForHotel(ctx, hotelID, roomID)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetForHotel(ctx context.Context, hotelID, roomID string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetForHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, roomID)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		res, err = s.repo.Get(ctx, shared.FilterByID(roomID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if res.ID == constant.Empty {
			return res, failure.NotFound("room not found") // nolint:wrapcheck
		}

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save room to cache")
		}
	}

	if res.HotelID != hotelID {
		return model.Room{}, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, hotelID, roomID string, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.GetForHotel(ctx, hotelID, roomID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, actor.FromContext(ctx).ID)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(roomID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, roomID)); err != nil {
		log.Warn().Err(err).Msg("failed to delete room cache")
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllRoom, hotelID))

	return nil
}
