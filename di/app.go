package di

import (
	"context"

	"guesthouse/infras/kafka"
	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	notificationService "guesthouse/internal/domains/notification/service"
	"guesthouse/internal/scheduler"
	"guesthouse/transport/http"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App is the API process: HTTP server plus the background notifier and scheduler.
type App struct {
	HTTP      *http.HTTP
	Notifier  notificationService.Notification
	Scheduler *scheduler.Scheduler
	Kafka     kafka.Client
	Postgres  *postgres.Connection
	Redis     *goRedis.Client
	Otel      otel.Otel
}

// Run starts the background workers and serves HTTP until shutdown completes.
func (a *App) Run() {
	a.Start()

	a.HTTP.OnShutdown(a.Stop)
	a.HTTP.Serve()
}

func (a *App) Start() {
	a.HTTP.AddReadinessCheck("postgres", a.Postgres.Ping)
	a.HTTP.AddReadinessCheck("redis", func(ctx context.Context) error {
		return a.Redis.Ping(ctx).Err()
	})

	a.Notifier.Start()
	a.Scheduler.Start()
}

// Stop drains workers before closing the connections they use.
func (a *App) Stop(ctx context.Context) {
	a.Scheduler.Stop(ctx)
	a.Notifier.Stop()

	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := a.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	if err := a.Postgres.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}

// Notifier is the standalone consumer that mails notifications published to kafka.
type Notifier struct {
	Notification notificationService.Notification
	Kafka        kafka.Client
	Otel         otel.Otel
}
