package timezone

import (
	"time"

	"stayledger/config"

	"github.com/rs/zerolog/log"
)

// hotelLocation decides which calendar day "today" is for walk-ins, no-show
// marking and channel push windows.
var hotelLocation = load(config.Get().App.Timezone)

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE not set, hotel calendar runs on UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, hotel calendar runs on UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Hotel calendar timezone initialized")

	return loc
}

// Now returns the current time in the hotel timezone.
func Now() time.Time {
	return time.Now().In(hotelLocation)
}

// Location is the configured hotel timezone.
func Location() *time.Location {
	return hotelLocation
}

// Format renders t in the hotel timezone.
func Format(t time.Time, layout string) string {
	return t.In(hotelLocation).Format(layout)
}
