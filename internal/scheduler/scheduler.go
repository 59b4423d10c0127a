package scheduler

import (
	"context"

	"guesthouse/config"
	"guesthouse/infras/otel"
	bookingService "guesthouse/internal/domains/booking/service"
	"guesthouse/shared/constant"
	"guesthouse/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic booking jobs.
type Scheduler struct {
	cron    *cron.Cron
	cfg     *config.Config
	booking bookingService.Booking
	otel    otel.Otel
}

func New(cfg *config.Config, booking bookingService.Booking, otel otel.Otel) *Scheduler {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithSeconds(),
		),
		cfg:     cfg,
		booking: booking,
		otel:    otel,
	}

	s.registerJobs()

	return s
}

func (s *Scheduler) registerJobs() {
	if !s.cfg.Booking.ReminderEnable {
		log.Info().Msg("check-in reminder job disabled")

		return
	}

	_, err := s.cron.AddFunc(s.cfg.Booking.ReminderCron, func() {
		s.RemindCheckIns(context.Background())
	})
	if err != nil {
		log.Error().Err(err).Str("spec", s.cfg.Booking.ReminderCron).Msg("failed to register check-in reminder job")

		return
	}

	log.Info().Str("spec", s.cfg.Booking.ReminderCron).Msg("check-in reminder job registered")
}

// RemindCheckIns notifies guests whose approved stay starts tomorrow.
func (s *Scheduler) RemindCheckIns(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".RemindCheckIns")
	defer scope.End()

	sent, err := s.booking.SendCheckInReminders(ctx, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("check-in reminder job failed")

		return
	}

	log.Info().Int("sent", sent).Msg("check-in reminders queued")
}

func (s *Scheduler) Start() {
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("starting scheduler")
	s.cron.Start()
}

// Stop waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		log.Info().Msg("scheduler stopped")
	case <-ctx.Done():
		log.Warn().Msg("scheduler stop timed out")
	}
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}
