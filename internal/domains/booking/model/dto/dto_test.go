package dto_test

import (
	"testing"
	"time"

	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingResponse_FromModelKeepsTimeOfDay(t *testing.T) {
	start := time.Date(2027, time.January, 10, 14, 0, 0, 0, time.UTC)
	end := time.Date(2027, time.January, 12, 11, 0, 0, 0, time.UTC)

	var res dto.BookingResponse
	res.FromModel(model.Booking{ID: "booking-1", StartAt: start, EndAt: end, Nights: 2})

	checkIn, err := time.Parse(time.RFC3339, res.CheckIn)
	require.NoError(t, err)
	assert.True(t, checkIn.Equal(start), "check_in %s", res.CheckIn)

	interval, err := model.ParseInterval(res.CheckIn, res.CheckOut)
	require.NoError(t, err)
	assert.True(t, interval.Start.Equal(start))
	assert.True(t, interval.End.Equal(end))
}
