package model

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

var ErrUnknownKind = errors.New("unknown notification kind")

type message struct {
	subject string
	body    *template.Template
}

var messages = map[string]message{
	KindRequestReceived: {
		subject: "Booking request received",
		body: template.Must(template.New(KindRequestReceived).Parse(`Dear {{.RecipientName}},

We have received your booking request for a {{.Payload.RoomType}} room ({{if .Payload.AC}}AC{{else}}non-AC{{end}})
from {{.Payload.CheckIn}} to {{.Payload.CheckOut}} ({{.Payload.Nights}} night(s), total {{.Payload.TotalPrice}}).

The request is pending review. You will receive another email once it has been processed.

Booking reference: {{.Payload.BookingID}}
`)),
	},
	KindApproved: {
		subject: "Booking approved",
		body: template.Must(template.New(KindApproved).Parse(`Dear {{.RecipientName}},

Your booking for {{.Payload.GuestName}} has been approved.

Room: {{.Payload.RoomNumber}}
Check-in: {{.Payload.CheckIn}}
Check-out: {{.Payload.CheckOut}}

Booking reference: {{.Payload.BookingID}}
`)),
	},
	KindRejected: {
		subject: "Booking rejected",
		body: template.Must(template.New(KindRejected).Parse(`Dear {{.RecipientName}},

We are sorry, your booking request from {{.Payload.CheckIn}} to {{.Payload.CheckOut}} could not be accommodated
and has been rejected.

Booking reference: {{.Payload.BookingID}}
`)),
	},
	KindCheckInReminder: {
		subject: "Check-in reminder",
		body: template.Must(template.New(KindCheckInReminder).Parse(`Dear {{.RecipientName}},

This is a reminder that {{.Payload.GuestName}} checks in to room {{.Payload.RoomNumber}} on {{.Payload.CheckIn}}.

Booking reference: {{.Payload.BookingID}}
`)),
	},
}

// Render returns the subject and plain text body for n.
func Render(n Notification) (subject, body string, err error) {
	msg, ok := messages[n.Kind]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind)
	}

	var buf bytes.Buffer
	if err = msg.body.Execute(&buf, n); err != nil {
		return "", "", fmt.Errorf("failed to render %s notification: %w", n.Kind, err)
	}

	return msg.subject, buf.String(), nil
}
