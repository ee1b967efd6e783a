package timezone

import (
	"hotel/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Str("location", time.Local.String()).Msg("No timezone configured, using system local time")
		appLocation = time.Local

		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to system local time")
		appLocation = time.Local

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Reinterpret keeps the wall clock of t and moves it into the application timezone.
// Postgres TIMESTAMP columns come back from lib/pq as UTC wall clocks.
func Reinterpret(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), GetLocation())
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}

	return appLocation
}

// SetLocation overrides the application timezone.
func SetLocation(loc *time.Location) {
	appLocation = loc
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}
