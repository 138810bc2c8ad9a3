package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/hotel/mocks"
	"stayledger/internal/domains/hotel/model"
	"stayledger/internal/domains/hotel/service"
	"stayledger/shared/actor"
	cacheMocks "stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	"stayledger/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEnsureOwner(t *testing.T) {
	owner := actor.Actor{ID: "owner-1", Role: constant.RoleHotelier}
	hotel := model.Hotel{ID: "h-1", OwnerID: "owner-1", Name: "Seaside", Active: true}

	tests := []struct {
		name      string
		who       actor.Actor
		setupMock func(repo *mocks.MockHotel, c *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "owner passes on cache miss",
			who:  owner,
			setupMock: func(repo *mocks.MockHotel, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "hotel:get:h-1", gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel, nil)
				c.EXPECT().Save(gomock.Any(), "hotel:get:h-1", hotel, gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin passes for foreign hotel",
			who:  actor.Actor{ID: "admin-1", Role: constant.RoleAdmin},
			setupMock: func(repo *mocks.MockHotel, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "other hotelier is forbidden",
			who:  actor.Actor{ID: "owner-2", Role: constant.RoleHotelier},
			setupMock: func(repo *mocks.MockHotel, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing hotel",
			who:  owner,
			setupMock: func(repo *mocks.MockHotel, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive hotel served from cache",
			who:  owner,
			setupMock: func(_ *mocks.MockHotel, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, v any) error {
						*(v.(*model.Hotel)) = model.Hotel{ID: "h-1", OwnerID: "owner-1"}

						return nil
					})
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockHotel(ctrl)
			c := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, c)

			svc := service.New(repo, &config.Config{}, c, otelMocks.NewOtel())

			res, err := svc.EnsureOwner(context.Background(), "h-1", tt.who)
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "h-1", res.ID)
		})
	}
}

func TestCommissionRate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.CommissionRate = "0.10"
	svc := service.New(nil, cfg, nil, otelMocks.NewOtel())

	assert.True(t, decimal.RequireFromString("0.10").Equal(svc.CommissionRate(model.Hotel{})))

	custom := model.Hotel{CommissionRate: decimal.NewNullDecimal(decimal.RequireFromString("0.15"))}
	assert.True(t, decimal.RequireFromString("0.15").Equal(svc.CommissionRate(custom)))
}
