package model_test

import (
	"testing"

	"guesthouse/internal/domains/notification/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	payload := model.Payload{
		BookingID:  "b-1",
		GuestName:  "Asha",
		RoomType:   "Single",
		AC:         true,
		CheckIn:    "2026-11-02 14:00",
		CheckOut:   "2026-11-04 11:00",
		Nights:     2,
		TotalPrice: 800,
		RoomNumber: "F03",
	}

	tests := []struct {
		name        string
		kind        string
		wantSubject string
		wantBody    []string
		wantErr     bool
	}{
		{
			name:        "request received",
			kind:        model.KindRequestReceived,
			wantSubject: "Booking request received",
			wantBody:    []string{"Single room (AC)", "2 night(s), total 800", "b-1"},
		},
		{
			name:        "approved names the room",
			kind:        model.KindApproved,
			wantSubject: "Booking approved",
			wantBody:    []string{"Room: F03", "Check-in: 2026-11-02 14:00"},
		},
		{
			name:        "rejected",
			kind:        model.KindRejected,
			wantSubject: "Booking rejected",
			wantBody:    []string{"has been rejected"},
		},
		{
			name:        "check-in reminder",
			kind:        model.KindCheckInReminder,
			wantSubject: "Check-in reminder",
			wantBody:    []string{"Asha checks in to room F03"},
		},
		{
			name:    "unknown kind",
			kind:    "invoice",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body, err := model.Render(model.Notification{
				Kind:          tt.kind,
				Recipient:     "asha@example.com",
				RecipientName: "Asha",
				Payload:       payload,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnknownKind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Contains(t, body, "Dear Asha")

			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}
