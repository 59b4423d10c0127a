package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"guesthouse/config"
	"guesthouse/infras/kafka"
	"guesthouse/infras/mail"
	"guesthouse/infras/otel"
	"guesthouse/internal/domains/notification/model"
	"guesthouse/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	TransportInline = "inline"
	TransportKafka  = "kafka"

	deliverAttempts = 3
	retryBackoff    = 200 * time.Millisecond

	defaultWorkers   = 1
	defaultQueueSize = 64
)

// Notification delivers booking lifecycle messages. Notify never blocks and never fails the caller.
type Notification interface {
	Notify(ctx context.Context, notification model.Notification)
	Deliver(ctx context.Context, notification model.Notification) error
	Send(ctx context.Context, notification model.Notification) error
	Consume(ctx context.Context) error
	Start()
	Stop()
}

type job struct {
	ctx          context.Context //nolint:containedctx
	notification model.Notification
}

type serviceImpl struct {
	cfg    *config.Config
	sender mail.Sender
	kafka  kafka.Client
	otel   otel.Otel

	workers int
	queue   chan job
	done    chan struct{}
	wg      sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func New(cfg *config.Config, sender mail.Sender, kafka kafka.Client, otel otel.Otel) Notification {
	workers := cfg.Notification.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	queueSize := cfg.Notification.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &serviceImpl{
		cfg:     cfg,
		sender:  sender,
		kafka:   kafka,
		otel:    otel,
		workers: workers,
		queue:   make(chan job, queueSize),
		done:    make(chan struct{}),
	}
}

// Notify queues the notification for the worker pool. A full queue drops it with a warning.
func (s *serviceImpl) Notify(ctx context.Context, notification model.Notification) {
	select {
	case <-s.done:
		log.Warn().Str("kind", notification.Kind).Msg("notification dispatcher stopped, dropping notification")

		return
	default:
	}

	select {
	case s.queue <- job{ctx: context.WithoutCancel(ctx), notification: notification}:
	default:
		log.Warn().
			Str("kind", notification.Kind).
			Str("booking_id", notification.Payload.BookingID).
			Msg("notification queue is full, dropping notification")
	}
}

func (s *serviceImpl) Start() {
	s.startOnce.Do(func() {
		for i := range s.workers {
			s.wg.Add(1)

			go s.worker(i)
		}

		log.Info().Int("workers", s.workers).Str("transport", s.transport()).Msg("notification dispatcher started")
	})
}

// Stop flushes what is already queued and waits for the workers to return.
func (s *serviceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.drain()

		log.Info().Msg("notification dispatcher stopped")
	})
}

func (s *serviceImpl) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			log.Debug().Int("worker", id).Msg("notification worker stopping")

			return
		case j := <-s.queue:
			s.process(j)
		}
	}
}

func (s *serviceImpl) drain() {
	for {
		select {
		case j := <-s.queue:
			s.process(j)
		default:
			return
		}
	}
}

func (s *serviceImpl) process(j job) {
	var err error

	for attempt := 1; attempt <= deliverAttempts; attempt++ {
		if err = s.Deliver(j.ctx, j.notification); err == nil {
			return
		}

		if errors.Is(err, model.ErrUnknownKind) || errors.Is(err, mail.ErrNoRecipient) {
			break
		}

		if attempt < deliverAttempts {
			time.Sleep(time.Duration(attempt*attempt) * retryBackoff)
		}
	}

	log.Error().
		Err(err).
		Str("kind", j.notification.Kind).
		Str("booking_id", j.notification.Payload.BookingID).
		Msg("failed to deliver notification")
}

// Deliver hands the notification to the configured transport: kafka publishes it, inline mails it.
func (s *serviceImpl) Deliver(ctx context.Context, notification model.Notification) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Deliver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.transport() != TransportKafka {
		return s.Send(ctx, notification)
	}

	err = s.kafka.SendMessages(ctx, s.cfg.Notification.Topic, kafka.Message{
		Key:   notification.Payload.BookingID,
		Value: notification,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Send renders the notification and mails it.
func (s *serviceImpl) Send(ctx context.Context, notification model.Notification) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	subject, body, err := model.Render(notification)
	if err != nil {
		return err
	}

	err = s.sender.Send(ctx, mail.Email{
		To:        notification.Recipient,
		ToName:    notification.RecipientName,
		Subject:   subject,
		PlainText: body,
	})
	if err != nil {
		return fmt.Errorf("failed to send %s notification: %w", notification.Kind, err)
	}

	log.Debug().Str("kind", notification.Kind).Str("to", notification.Recipient).Msg("notification sent")

	return nil
}

// Consume mails every notification published on the notification topic until ctx is done.
func (s *serviceImpl) Consume(ctx context.Context) error {
	err := s.kafka.Consume(ctx, s.cfg.Notification.ConsumerGroup, s.cfg.Notification.Topic, func(ctx context.Context, msg kafkaGo.Message) error {
		notification, err := kafka.Decode[model.Notification](msg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return s.Send(ctx, notification)
	})
	if err != nil {
		return fmt.Errorf("failed to consume notifications: %w", err)
	}

	return nil
}

func (s *serviceImpl) transport() string {
	if s.cfg.Notification.Transport == constant.Empty {
		return TransportInline
	}

	return s.cfg.Notification.Transport
}
