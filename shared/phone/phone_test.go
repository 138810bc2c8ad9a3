package phone_test

import (
	"testing"

	"stayledger/shared/failure"
	"stayledger/shared/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr bool
	}{
		{name: "international with spaces", raw: "+1 650-253-0000", region: "ID", want: "+16502530000"},
		{name: "national in region", raw: "(650) 253-0000", region: "us", want: "+16502530000"},
		{name: "empty", raw: "  ", region: "US", want: ""},
		{name: "too short", raw: "12", region: "US", wantErr: true},
		{name: "letters", raw: "call me", region: "US", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.Normalize(tt.raw, tt.region)
			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindBadRequest))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_SameGuestDifferentFormatting(t *testing.T) {
	a, errA := phone.Normalize("+1 (650) 253 0000", "US")
	b, errB := phone.Normalize("650.253.0000", "US")

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Equal(t, a, b)
}
