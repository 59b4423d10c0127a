package model

const (
	KindRequestReceived = "request_received"
	KindApproved        = "approved"
	KindRejected        = "rejected"
	KindCheckInReminder = "check_in_reminder"
)

// Notification is a single message for a single recipient. It doubles as the kafka message value.
type Notification struct {
	Kind          string  `json:"kind"`
	Recipient     string  `json:"recipient"`
	RecipientName string  `json:"recipient_name"`
	Payload       Payload `json:"payload"`
}

type Payload struct {
	BookingID  string `json:"booking_id"`
	GuestName  string `json:"guest_name"`
	RoomType   string `json:"room_type"`
	AC         bool   `json:"ac"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	TotalPrice int64  `json:"total_price"`
	RoomNumber string `json:"room_number,omitempty"`
}
