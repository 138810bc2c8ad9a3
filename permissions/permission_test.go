package permissions

import (
	"net/http"
	"testing"

	"stayledger/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTable(t *testing.T) {
	table := Get()
	require.NotNil(t, table)

	payout := table.FindPermissions("/v1/hotels/{hotelID}/payouts/{id}", http.MethodPatch)
	assert.True(t, payout.Allows(constant.RoleAdmin))
	assert.False(t, payout.Allows(constant.RoleHotelier))

	rooms := table.FindPermissions("/v1/hotels/{hotelID}/rooms/", http.MethodGet)
	assert.Equal(t, "/v1/hotels/{hotelID}/rooms", rooms.Path)
	assert.True(t, rooms.Allows(constant.RoleHotelier))
	assert.False(t, rooms.Allows(constant.RoleGuest))

	unlisted := table.FindPermissions("/v1/nowhere", http.MethodGet)
	assert.True(t, unlisted.Allows(constant.RoleGuest))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: `{"endpoints":[{"path":"/v1/me","method":"GET","permissions":["guest"]}]}`,
		},
		{
			name:    "broken json",
			data:    `{"endpoints":`,
			wantErr: "decode permissions",
		},
		{
			name:    "unknown role",
			data:    `{"endpoints":[{"path":"/v1/me","method":"GET","permissions":["owner"]}]}`,
			wantErr: `unknown role "owner"`,
		},
		{
			name:    "duplicate after normalization",
			data:    `{"endpoints":[{"path":"/v1/rooms","method":"GET"},{"path":"/v1/rooms/","method":"GET"}]}`,
			wantErr: "duplicate permission entry GET /v1/rooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
