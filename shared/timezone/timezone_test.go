package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"guesthouse/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useZone(t *testing.T, name string) *time.Location {
	t.Helper()

	previous := timezone.GetLocation()
	t.Cleanup(func() { _ = timezone.SetLocation(previous.String()) })

	require.NoError(t, timezone.SetLocation(name))

	return timezone.GetLocation()
}

func TestSetLocation(t *testing.T) {
	t.Run("named zone", func(t *testing.T) {
		loc := useZone(t, "Asia/Kolkata")

		assert.Equal(t, "Asia/Kolkata", loc.String())
		assert.Equal(t, loc, timezone.Now().Location())
	})

	t.Run("empty selects UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, useZone(t, ""))
	})

	t.Run("unknown zone falls back to UTC", func(t *testing.T) {
		previous := timezone.GetLocation()
		t.Cleanup(func() { _ = timezone.SetLocation(previous.String()) })

		assert.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
		assert.Equal(t, time.UTC, timezone.GetLocation())
	})
}

func TestParseDateTime(t *testing.T) {
	loc := useZone(t, "Asia/Kolkata")

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 keeps the instant", value: "2026-11-01T06:30:00Z", want: time.Date(2026, 11, 1, 12, 0, 0, 0, loc)},
		{name: "date only is local midnight", value: "2026-11-01", want: time.Date(2026, 11, 1, 0, 0, 0, 0, loc)},
		{name: "day first is rejected", value: "01/11/2026", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDateTime(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := useZone(t, "Asia/Kolkata")

	// 20:00 UTC on the 10th is already the 11th in Kolkata.
	got := timezone.StartOfDay(time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, loc), got)
}

func TestFormat(t *testing.T) {
	useZone(t, "Asia/Kolkata")

	assert.Equal(t, "2026-01-11 01:30", timezone.Format(time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC), "2006-01-02 15:04"))
}
