package model

import (
	"errors"
	"math"
	"time"

	roomModel "guesthouse/internal/domains/room/model"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
	"guesthouse/shared/timezone"
)

var (
	ErrInvalidInterval = errors.New("checkout must be after checkin")
	ErrUnknownCategory = errors.New("no nightly rate for the requested room category")
)

// Interval is a half-open stay [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}

	return Interval{Start: start, End: end}, nil
}

// ParseInterval reads check-in and check-out as RFC3339 timestamps or plain dates.
// Errors are validation failures naming the offending field.
func ParseInterval(checkIn, checkOut string) (Interval, error) {
	start, err := timezone.ParseDateTime(checkIn)
	if err != nil {
		return Interval{}, failure.ValidationField("check_in", "must be an RFC3339 timestamp or a YYYY-MM-DD date") // nolint:wrapcheck
	}

	end, err := timezone.ParseDateTime(checkOut)
	if err != nil {
		return Interval{}, failure.ValidationField("check_out", "must be an RFC3339 timestamp or a YYYY-MM-DD date") // nolint:wrapcheck
	}

	interval, err := NewInterval(start, end)
	if err != nil {
		return Interval{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return interval, nil
}

// Overlaps is the single conflict rule: touching intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Nights counts started 24 hour periods, never less than one.
func (i Interval) Nights() int {
	nights := int(math.Ceil(i.End.Sub(i.Start).Hours() / constant.HoursPerDay))

	return max(nights, 1)
}

// Price is the nightly rate of the category times the number of nights.
func Price(roomType string, ac bool, interval Interval) (int64, error) {
	rate, ok := roomModel.RateFor(roomType, ac)
	if !ok {
		return 0, ErrUnknownCategory
	}

	return rate * int64(interval.Nights()), nil
}
