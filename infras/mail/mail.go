package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"guesthouse/config"
	"guesthouse/infras/otel"
	"guesthouse/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgMail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

const (
	DriverSMTP     = "smtp"
	DriverSendGrid = "sendgrid"
	DriverLog      = "log"

	otelAttrRecipient = "mail.recipient"
	otelAttrDriver    = "mail.driver"
)

var ErrNoRecipient = errors.New("mail recipient is required")

type Email struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

type Sender interface {
	Send(ctx context.Context, email Email) error
}

// New returns the sender configured by NOTIFICATION_DRIVER, falling back to the log sender.
func New(cfg *config.Config, otl otel.Otel) Sender {
	switch cfg.Notification.Driver {
	case DriverSMTP:
		return NewSMTP(cfg, otl)
	case DriverSendGrid:
		return NewSendGrid(cfg, otl)
	case DriverLog, constant.Empty:
		return NewLog(otl)
	default:
		log.Warn().Str("driver", cfg.Notification.Driver).Msg("Unknown mail driver, using log sender")

		return NewLog(otl)
	}
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
	name   string
	otel   otel.Otel
}

func NewSMTP(cfg *config.Config, otl otel.Otel) Sender {
	smtp := cfg.External.SMTP

	return &smtpSender{
		dialer: gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password),
		from:   smtp.From,
		name:   cfg.Notification.SenderName,
		otel:   otl,
	}
}

func (s *smtpSender) Send(ctx context.Context, email Email) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".smtp.Send")
	defer scope.End()

	scope.SetAttributes(map[string]any{otelAttrRecipient: email.To, otelAttrDriver: DriverSMTP})

	if email.To == constant.Empty {
		return ErrNoRecipient
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, s.name)
	msg.SetAddressHeader("To", email.To, email.ToName)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody(constant.ContentTypeTextPlain, email.PlainText)

	if email.HTML != constant.Empty {
		msg.AddAlternative("text/html", email.HTML)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}

type sendGridSender struct {
	client *sendgrid.Client
	from   string
	name   string
	otel   otel.Otel
}

func NewSendGrid(cfg *config.Config, otl otel.Otel) Sender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(cfg.External.SendGrid.APIKey),
		from:   cfg.External.SendGrid.From,
		name:   cfg.Notification.SenderName,
		otel:   otl,
	}
}

func (s *sendGridSender) Send(ctx context.Context, email Email) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".sendgrid.Send")
	defer scope.End()

	scope.SetAttributes(map[string]any{otelAttrRecipient: email.To, otelAttrDriver: DriverSendGrid})

	if email.To == constant.Empty {
		return ErrNoRecipient
	}

	message := sgMail.NewSingleEmail(
		sgMail.NewEmail(s.name, s.from),
		email.Subject,
		sgMail.NewEmail(email.ToName, email.To),
		email.PlainText,
		email.HTML,
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		scope.TraceError(err)

		return err
	}

	return nil
}

type logSender struct {
	otel otel.Otel
}

// NewLog returns a sender that only writes the message to the application log.
func NewLog(otl otel.Otel) Sender {
	return &logSender{otel: otl}
}

func (s *logSender) Send(ctx context.Context, email Email) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".log.Send")
	defer scope.End()

	if email.To == constant.Empty {
		return ErrNoRecipient
	}

	log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("body", email.PlainText).
		Msg("mail delivered to log")

	return nil
}
