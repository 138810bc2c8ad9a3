package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/fraud/mocks"
	"stayledger/internal/domains/fraud/model"
	"stayledger/internal/domains/fraud/service"
	userMocks "stayledger/internal/domains/user/mocks"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.PhoneRegion = "ID"
	cfg.Booking.NoShowTrustPenalty = 15
	cfg.Booking.PayAtHotelRevokeAfter = 3

	return cfg
}

func TestCheckWalkInTx(t *testing.T) {
	stay, _ := daterange.New(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))
	check := model.WalkInCheck{HotelID: "h-1", RoomID: "r-1", Phone: "+6281234567890", Range: stay}

	tests := []struct {
		name      string
		check     model.WalkInCheck
		setupMock func(repo *mocks.MockFraud)
		wantRule  string
		wantErr   bool
	}{
		{
			name:  "clean walk-in",
			check: check,
			setupMock: func(repo *mocks.MockFraud) {
				repo.EXPECT().PlatformBookingOnRoomTx(gomock.Any(), gomock.Any(), "r-1", stay).Return(false, nil)
				repo.EXPECT().PlatformBookingForPhoneTx(gomock.Any(), gomock.Any(), "h-1", "+6281234567890", stay).Return(false, nil)
			},
		},
		{
			name:  "platform booking on the same room",
			check: check,
			setupMock: func(repo *mocks.MockFraud) {
				repo.EXPECT().PlatformBookingOnRoomTx(gomock.Any(), gomock.Any(), "r-1", stay).Return(true, nil)
			},
			wantRule: model.RulePlatformBookingOnRoom,
		},
		{
			name:  "same guest phone on another room",
			check: check,
			setupMock: func(repo *mocks.MockFraud) {
				repo.EXPECT().PlatformBookingOnRoomTx(gomock.Any(), gomock.Any(), "r-1", stay).Return(false, nil)
				repo.EXPECT().PlatformBookingForPhoneTx(gomock.Any(), gomock.Any(), "h-1", "+6281234567890", stay).Return(true, nil)
			},
			wantRule: model.RuleDuplicateGuestPhone,
		},
		{
			name:  "walk-in without phone skips the phone rule",
			check: model.WalkInCheck{HotelID: "h-1", RoomID: "r-1", Range: stay},
			setupMock: func(repo *mocks.MockFraud) {
				repo.EXPECT().PlatformBookingOnRoomTx(gomock.Any(), gomock.Any(), "r-1", stay).Return(false, nil)
			},
		},
		{
			name:  "repository failure",
			check: check,
			setupMock: func(repo *mocks.MockFraud) {
				repo.EXPECT().PlatformBookingOnRoomTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockFraud(ctrl)
			tt.setupMock(repo)

			err := service.New(repo, nil, newConfig(), otelMocks.NewOtel()).CheckWalkInTx(context.Background(), nil, tt.check)

			switch {
			case tt.wantRule != "":
				assert.True(t, failure.IsKind(err, failure.KindFraudRejected))
				assert.True(t, strings.HasPrefix(err.Error(), tt.wantRule), err.Error())
			case tt.wantErr:
				assert.Error(t, err)
				assert.False(t, failure.IsKind(err, failure.KindFraudRejected))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyNoShowTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockUser(ctrl)
	users.EXPECT().ApplyNoShowPenaltyTx(gomock.Any(), gomock.Any(), "u-1", 15, 3).Return(nil)

	err := service.New(nil, users, newConfig(), otelMocks.NewOtel()).ApplyNoShowTx(context.Background(), nil, "u-1")

	assert.NoError(t, err)
}

func TestNormalizePhone(t *testing.T) {
	svc := service.New(nil, nil, newConfig(), otelMocks.NewOtel())

	got, err := svc.NormalizePhone("+1 650-253-0000")

	assert.NoError(t, err)
	assert.Equal(t, "+16502530000", got)
}
