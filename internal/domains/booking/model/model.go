package model

import (
	"time"

	"guesthouse/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldRequesterID        = "requester_id"
	FieldGuestName          = "guest_name"
	FieldGuestEmail         = "guest_email"
	FieldRoomType           = "room_type"
	FieldAC                 = "ac"
	FieldFloorPreference    = "floor_preference"
	FieldStartAt            = "start_at"
	FieldEndAt              = "end_at"
	FieldReceiptURL         = "receipt_url"
	FieldStatus             = "status"
	FieldAssignedRoomNumber = "assigned_room_number"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Booking struct {
	ID                 string    `db:"id"`
	RequesterID        string    `db:"requester_id"`
	GuestName          string    `db:"guest_name"`
	GuestEmail         string    `db:"guest_email"`
	GuestPhone         string    `db:"guest_phone"`
	GuestAddress       string    `db:"guest_address"`
	Occupation         string    `db:"occupation"`
	EnrollmentID       string    `db:"enrollment_id"`
	GovernmentID       string    `db:"government_id"`
	RoomType           string    `db:"room_type"`
	AC                 bool      `db:"ac"`
	FloorPreference    string    `db:"floor_preference"`
	StartAt            time.Time `db:"start_at"`
	EndAt              time.Time `db:"end_at"`
	Purpose            string    `db:"purpose"`
	AmountPaid         int64     `db:"amount_paid"`
	TransactionRef     string    `db:"transaction_ref"`
	ReceiptURL         string    `db:"receipt_url"`
	Nights             int       `db:"nights"`
	TotalPrice         int64     `db:"total_price"`
	Status             string    `db:"status"`
	AssignedRoomNumber *string   `db:"assigned_room_number"`
	model.Metadata
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartAt, End: b.EndAt}
}

func (b Booking) IsPending() bool {
	return b.Status == StatusPending
}
