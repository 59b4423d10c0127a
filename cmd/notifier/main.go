package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"guesthouse/config"
	"guesthouse/di"
	"guesthouse/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := di.InitializeNotifier()

	defer func() {
		if err := notifier.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}

		if err := notifier.Otel.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	log.Info().Str("topic", cfg.Notification.Topic).Str("group", cfg.Notification.ConsumerGroup).Msg("notification consumer started")

	if err := notifier.Notification.Consume(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("notification consumer stopped")

		return
	}

	log.Info().Msg("notification consumer stopped")
}
