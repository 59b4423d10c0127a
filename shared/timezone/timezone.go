package timezone

import (
	"fmt"
	"time"

	"guesthouse/config"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var appLocation = time.UTC

func init() {
	if err := SetLocation(config.Get().App.Timezone); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
	}
}

// SetLocation switches the application zone. An empty name selects UTC; an unknown name
// leaves UTC in place and returns the lookup error.
func SetLocation(name string) error {
	if name == "" {
		name = fallbackZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.UTC

		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	appLocation = loc

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return nil
}

func GetLocation() *time.Location {
	return appLocation
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDateTime accepts RFC3339 timestamps or plain dates. Plain dates are midnight in the application timezone.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return ToAppTime(t), nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, appLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

// StartOfDay truncates t to midnight in the application timezone.
func StartOfDay(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
