package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guesthouse/config"
	"guesthouse/infras/otel/mocks"
	bookingMocks "guesthouse/internal/domains/booking/mocks"
	"guesthouse/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScheduler_RegisterJobs(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		spec     string
		wantJobs int
	}{
		{name: "disabled", enable: false, spec: "0 0 18 * * *", wantJobs: 0},
		{name: "enabled", enable: true, spec: "0 0 18 * * *", wantJobs: 1},
		{name: "invalid spec", enable: true, spec: "every evening", wantJobs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{}
			cfg.Booking.ReminderEnable = tt.enable
			cfg.Booking.ReminderCron = tt.spec

			s := scheduler.New(cfg, bookingMocks.NewMockBookingService(ctrl), mocks.NewOtel())

			assert.Equal(t, tt.wantJobs, s.Jobs())
		})
	}
}

func TestScheduler_RemindCheckIns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBooking := bookingMocks.NewMockBookingService(ctrl)
	s := scheduler.New(&config.Config{}, mockBooking, mocks.NewOtel())

	mockBooking.EXPECT().
		SendCheckInReminders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, day time.Time) (int, error) {
			assert.WithinDuration(t, time.Now(), day, time.Minute)

			return 2, nil
		})

	s.RemindCheckIns(context.Background())

	mockBooking.EXPECT().
		SendCheckInReminders(gomock.Any(), gomock.Any()).
		Return(0, errors.New("db down"))

	s.RemindCheckIns(context.Background())
}

func TestScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Booking.ReminderEnable = true
	cfg.Booking.ReminderCron = "0 0 18 * * *"

	s := scheduler.New(cfg, bookingMocks.NewMockBookingService(ctrl), mocks.NewOtel())
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.Stop(ctx)
}
