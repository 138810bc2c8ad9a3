package service_test

import (
	"context"
	"errors"
	"testing"

	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/payment/mocks"
	"stayledger/internal/domains/payment/model"
	"stayledger/internal/domains/payment/service"
	cacheMocks "stayledger/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEarnings_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPayment(ctrl)
	c := cacheMocks.NewMockRedisCache(ctrl)

	earnings := model.Earnings{WalkInRevenue: 2000, PlatformRevenue: 5000, CommissionTotal: 500}
	earnings.Derive()

	c.EXPECT().Get(gomock.Any(), "payment:earnings:h-1", gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Earnings(gomock.Any(), "h-1").Return(earnings, nil)
	c.EXPECT().Save(gomock.Any(), "payment:earnings:h-1", earnings, gomock.Any()).Return(nil)

	res, err := service.New(repo, &config.Config{}, c, otelMocks.NewOtel()).Earnings(context.Background(), "h-1")

	require.NoError(t, err)
	assert.Equal(t, int64(6500), res.NetEarnings)
}

func TestEarnings_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPayment(ctrl)
	c := cacheMocks.NewMockRedisCache(ctrl)

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Earnings(gomock.Any(), "h-1").Return(model.Earnings{}, errors.New("db down"))

	_, err := service.New(repo, &config.Config{}, c, otelMocks.NewOtel()).Earnings(context.Background(), "h-1")

	assert.Error(t, err)
}

func TestAvailableBalanceTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPayment(ctrl)

	earnings := model.Earnings{SettledPayable: 4000, ForfeitedHotelShare: 500, PayoutReserved: 1500}
	earnings.Derive()
	repo.EXPECT().EarningsTx(gomock.Any(), gomock.Any(), "h-1").Return(earnings, nil)

	balance, err := service.New(repo, &config.Config{}, nil, otelMocks.NewOtel()).AvailableBalanceTx(context.Background(), nil, "h-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3000), balance)
}

func TestInvalidateEarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cacheMocks.NewMockRedisCache(ctrl)

	c.EXPECT().Delete(gomock.Any(), "payment:earnings:h-1").Return(errors.New("redis down"))

	service.New(nil, &config.Config{}, c, otelMocks.NewOtel()).InvalidateEarnings(context.Background(), "h-1")
}
