package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/user/mocks"
	"stayledger/internal/domains/user/model"
	"stayledger/internal/domains/user/service"
	"stayledger/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		repoErr  error
		wantCode int
	}{
		{
			name: "active user",
			user: model.User{ID: "u-1", Active: true, TrustScore: 80},
		},
		{
			name:     "missing user",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "inactive user",
			user:     model.User{ID: "u-1"},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository error",
			repoErr:  errors.New("db down"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUser(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user, tt.repoErr)

			res, err := service.New(repo, otelMocks.NewOtel()).Get(context.Background(), "u-1")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 80, res.TrustScore)
		})
	}
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUser(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.User{ID: "u-1", Active: true, LifetimePoints: 5200, Tier: model.TierGold}, nil)

	res, err := service.New(repo, otelMocks.NewOtel()).Profile(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Equal(t, model.TierGold, res.Tier)
	assert.Equal(t, int64(5200), res.LifetimePoints)
}
