package mail_test

import (
	"context"
	"testing"

	"guesthouse/config"
	"guesthouse/infras/mail"
	"guesthouse/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

func TestNew_SelectsDriver(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{name: "smtp", driver: mail.DriverSMTP},
		{name: "sendgrid", driver: mail.DriverSendGrid},
		{name: "log", driver: mail.DriverLog},
		{name: "unknown falls back", driver: "pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Notification.Driver = tt.driver

			assert.NotNil(t, mail.New(cfg, mocks.NewOtel()))
		})
	}
}

func TestLogSender_Send(t *testing.T) {
	sender := mail.NewLog(mocks.NewOtel())

	err := sender.Send(context.Background(), mail.Email{To: "student@example.com", Subject: "hello", PlainText: "body"})
	assert.NoError(t, err)

	err = sender.Send(context.Background(), mail.Email{Subject: "hello"})
	assert.ErrorIs(t, err, mail.ErrNoRecipient)
}

func TestSMTPSender_RequiresRecipient(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.SMTP.Host = "localhost"
	cfg.External.SMTP.Port = 2525

	err := mail.NewSMTP(cfg, mocks.NewOtel()).Send(context.Background(), mail.Email{Subject: "hello"})
	assert.ErrorIs(t, err, mail.ErrNoRecipient)
}
