package jwt_test

import (
	"testing"
	"time"

	"stayledger/config"
	"stayledger/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "stayledger"
	cfg.JWT.AccessSecret = "test-secret"

	return jwt.New(cfg)
}

func TestSignAndValidate(t *testing.T) {
	svc := newService()

	token, err := svc.Sign("user-1", "owner@example.com", "hotelier", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "hotelier", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService()

	token, err := svc.Sign("user-1", "", "guest", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := &config.Config{}
	other.JWT.AccessSecret = "other"

	token, err := jwt.New(other).Sign("user-1", "", "guest", time.Minute)
	require.NoError(t, err)

	_, err = newService().ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic abc", wantErr: true},
		{name: "no token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
