package model_test

import (
	"net/http"
	"testing"
	"time"

	"guesthouse/internal/domains/booking/model"
	roomModel "guesthouse/internal/domains/room/model"
	"guesthouse/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	_, err := model.NewInterval(day(12), day(10))
	assert.ErrorIs(t, err, model.ErrInvalidInterval)

	_, err = model.NewInterval(day(10), day(10))
	assert.ErrorIs(t, err, model.ErrInvalidInterval)

	in, err := model.NewInterval(day(10), day(12))
	require.NoError(t, err)
	assert.Equal(t, day(10), in.Start)
}

func TestInterval_Overlaps(t *testing.T) {
	a := model.Interval{Start: day(10), End: day(12)}

	tests := []struct {
		name  string
		other model.Interval
		want  bool
	}{
		{name: "partial overlap at the end", other: model.Interval{Start: day(11), End: day(13)}, want: true},
		{name: "partial overlap at the start", other: model.Interval{Start: day(9), End: day(11)}, want: true},
		{name: "contained", other: model.Interval{Start: day(10).Add(time.Hour), End: day(11)}, want: true},
		{name: "containing", other: model.Interval{Start: day(1), End: day(20)}, want: true},
		{name: "identical", other: a, want: true},
		{name: "touching after", other: model.Interval{Start: day(12), End: day(14)}, want: false},
		{name: "touching before", other: model.Interval{Start: day(8), End: day(10)}, want: false},
		{name: "disjoint", other: model.Interval{Start: day(20), End: day(21)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(a))
		})
	}
}

func TestInterval_Nights(t *testing.T) {
	assert.Equal(t, 2, model.Interval{Start: day(10), End: day(12)}.Nights())
	assert.Equal(t, 1, model.Interval{Start: day(10), End: day(10).Add(3 * time.Hour)}.Nights())
	assert.Equal(t, 2, model.Interval{Start: day(10), End: day(11).Add(time.Hour)}.Nights())
}

func TestPrice(t *testing.T) {
	in := model.Interval{Start: day(10), End: day(13)}

	total, err := model.Price(roomModel.TypeDouble, true, in)
	require.NoError(t, err)
	assert.Equal(t, int64(2400), total)

	again, err := model.Price(roomModel.TypeDouble, true, model.Interval{Start: day(20), End: day(23)})
	require.NoError(t, err)
	assert.Equal(t, total, again)

	_, err = model.Price("Suite", false, in)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantMsg  string
	}{
		{name: "timestamps", checkIn: "2025-01-10T14:00:00Z", checkOut: "2025-01-12T11:00:00Z"},
		{name: "plain dates", checkIn: "2025-01-10", checkOut: "2025-01-12"},
		{name: "bad check-in", checkIn: "tomorrow", checkOut: "2025-01-12", wantMsg: "check_in must be an RFC3339 timestamp or a YYYY-MM-DD date"},
		{name: "bad check-out", checkIn: "2025-01-10", checkOut: "12-01-2025", wantMsg: "check_out must be an RFC3339 timestamp or a YYYY-MM-DD date"},
		{name: "reversed", checkIn: "2025-01-12", checkOut: "2025-01-10", wantMsg: "checkout must be after checkin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := model.ParseInterval(tt.checkIn, tt.checkOut)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, err.Error())

				return
			}

			require.NoError(t, err)
			assert.True(t, interval.End.After(interval.Start))
		})
	}
}
