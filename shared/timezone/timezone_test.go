package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty falls back to UTC", in: "", want: "UTC"},
		{name: "unknown falls back to UTC", in: "Mars/Olympus_Mons", want: "UTC"},
		{name: "iana name", in: "Asia/Jakarta", want: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, load(tt.in).String())
		})
	}
}

func TestFormatUsesHotelLocation(t *testing.T) {
	previous := hotelLocation
	t.Cleanup(func() { hotelLocation = previous })

	hotelLocation = load("Asia/Jakarta")

	late := time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-11", Format(late, "2006-01-02"))
	assert.Equal(t, hotelLocation, Now().Location())
	assert.Equal(t, "Asia/Jakarta", Location().String())
}
