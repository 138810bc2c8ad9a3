package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/room/mocks"
	"stayledger/internal/domains/room/model"
	"stayledger/internal/domains/room/model/dto"
	"stayledger/internal/domains/room/service"
	"stayledger/shared/actor"
	cacheMocks "stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *mocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoom(ctrl)
	c := cacheMocks.NewMockRedisCache(ctrl)

	return service.New(repo, &config.Config{}, c, otelMocks.NewOtel()), repo, c
}

func TestCreate(t *testing.T) {
	svc, repo, c := newService(t)
	ctx := actor.With(context.Background(), actor.Actor{ID: "owner-1", Role: constant.RoleHotelier})

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.Room) error {
			assert.Equal(t, "h-1", r.HotelID)
			assert.Equal(t, int64(500), r.BasePrice)
			assert.True(t, r.Active)
			assert.Equal(t, "owner-1", r.CreatedBy)
			assert.NotEmpty(t, r.ID)

			return nil
		})
	c.EXPECT().Clear(gomock.Any(), "room:gets:h-1*").Return(nil)

	res, err := svc.Create(ctx, "h-1", dto.CreateRoomRequest{Name: "101", RoomType: "deluxe", BasePrice: 500, Capacity: 2})

	require.NoError(t, err)
	assert.Equal(t, "101", res.Name)
}

func TestCreate_InsertError(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), "h-1", dto.CreateRoomRequest{Name: "101", RoomType: "std", BasePrice: 1, Capacity: 1})

	assert.Error(t, err)
}

func TestGetForHotel(t *testing.T) {
	room := model.Room{ID: "r-1", HotelID: "h-1", BasePrice: 1000, Active: true}

	tests := []struct {
		name      string
		hotelID   string
		setupMock func(repo *mocks.MockRoom, c *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name:    "cache miss loads from repository",
			hotelID: "h-1",
			setupMock: func(repo *mocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room:get:r-1", gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				c.EXPECT().Save(gomock.Any(), "room:get:r-1", room, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "cache hit",
			hotelID: "h-1",
			setupMock: func(_ *mocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, v any) error {
						*(v.(*model.Room)) = room

						return nil
					})
			},
		},
		{
			name:    "room of another hotel",
			hotelID: "h-2",
			setupMock: func(repo *mocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:    "missing room",
			hotelID: "h-1",
			setupMock: func(repo *mocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			tt.setupMock(repo, c)

			res, err := svc.GetForHotel(context.Background(), tt.hotelID, "r-1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, room, res)
		})
	}
}

func TestGetAll(t *testing.T) {
	svc, repo, c := newService(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{{ID: "r-1"}, {ID: "r-2"}}, nil)
	c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.GetAll(context.Background(), "h-1", params)

	require.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 12, res.TotalData)
}

func TestUpdate(t *testing.T) {
	svc, repo, c := newService(t)
	capacity := 3

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", HotelID: "h-1"}, nil)
	c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, int64(750), fields[model.FieldBasePrice])
			assert.Equal(t, &capacity, fields[model.FieldCapacity])
			assert.NotContains(t, fields, model.FieldName)

			return nil
		})
	c.EXPECT().Delete(gomock.Any(), "room:get:r-1").Return(nil)
	c.EXPECT().Clear(gomock.Any(), "room:gets:h-1*").Return(nil)

	err := svc.Update(context.Background(), "h-1", "r-1", dto.UpdateRoomRequest{BasePrice: 750, Capacity: &capacity})

	assert.NoError(t, err)
}
