package dto

import (
	"io"
	"mime/multipart"
	"slices"

	"guesthouse/internal/domains/booking/model"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	gModel "guesthouse/shared/model"
	"guesthouse/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingFormFields are the only multipart values accepted when creating a booking.
var CreateBookingFormFields = []string{
	"guest_name", "guest_email", "guest_phone", "guest_address", "occupation", "enrollment_id",
	"government_id", "room_type", "ac", "floor_preference", "check_in", "check_out", "purpose",
	"amount_paid", "transaction_ref",
}

func IsCreateBookingFormField(name string) bool {
	return slices.Contains(CreateBookingFormFields, name)
}

type CreateBookingRequest struct {
	GuestName       string                `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string                `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string                `json:"guest_phone"      validate:"required,max=20"`
	GuestAddress    string                `json:"guest_address"    validate:"required,max=255"`
	Occupation      string                `json:"occupation"       validate:"omitempty,max=100"`
	EnrollmentID    string                `json:"enrollment_id"    validate:"omitempty,max=50"`
	GovernmentID    string                `json:"government_id"    validate:"omitempty,max=50"`
	RoomType        string                `json:"room_type"        validate:"required,oneof=Single Double"`
	AC              *bool                 `json:"ac"               validate:"required"`
	FloorPreference string                `json:"floor_preference" validate:"omitempty,max=20"`
	CheckIn         string                `json:"check_in"         validate:"required"`
	CheckOut        string                `json:"check_out"        validate:"required"`
	Purpose         string                `json:"purpose"          validate:"required,max=500"`
	AmountPaid      int64                 `json:"amount_paid"      validate:"gte=0"`
	TransactionRef  string                `json:"transaction_ref"  validate:"required,max=100"`
	Receipt         *multipart.FileHeader `form:"receipt"          json:"-"                          validate:"required,mimetypes=image/png image/jpeg application/pdf"`
	ReceiptFile     io.Reader             `json:"-"`
}

// ToModel builds a pending booking. Interval, price and receipt are resolved by the caller.
func (c *CreateBookingRequest) ToModel(requester string, interval model.Interval, total int64, receiptURL string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		RequesterID:     requester,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		GuestAddress:    c.GuestAddress,
		Occupation:      c.Occupation,
		EnrollmentID:    c.EnrollmentID,
		GovernmentID:    c.GovernmentID,
		RoomType:        c.RoomType,
		AC:              c.AC != nil && *c.AC,
		FloorPreference: c.FloorPreference,
		StartAt:         interval.Start,
		EndAt:           interval.End,
		Purpose:         c.Purpose,
		AmountPaid:      c.AmountPaid,
		TransactionRef:  c.TransactionRef,
		ReceiptURL:      receiptURL,
		Nights:          interval.Nights(),
		TotalPrice:      total,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  requester,
			ModifiedBy: requester,
		},
	}
}

type ApproveBookingRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=10"`
}

type ListBookingsRequest struct {
	Status      string `json:"status"       validate:"omitempty,oneof=pending approved rejected"`
	RoomType    string `json:"room_type"    validate:"omitempty,oneof=Single Double"`
	RequesterID string `json:"requester_id" validate:"omitempty,max=64"`
}

func (l *ListBookingsRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if l.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: l.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.RoomType != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomType, Value: l.RoomType, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.RequesterID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRequesterID, Value: l.RequesterID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	RequesterID        string  `json:"requester_id"`
	GuestName          string  `json:"guest_name"`
	GuestEmail         string  `json:"guest_email"`
	GuestPhone         string  `json:"guest_phone"`
	GuestAddress       string  `json:"guest_address"`
	Occupation         string  `json:"occupation"`
	EnrollmentID       string  `json:"enrollment_id"`
	GovernmentID       string  `json:"government_id"`
	RoomType           string  `json:"room_type"`
	AC                 bool    `json:"ac"`
	FloorPreference    string  `json:"floor_preference"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Nights             int     `json:"nights"`
	Purpose            string  `json:"purpose"`
	AmountPaid         int64   `json:"amount_paid"`
	TransactionRef     string  `json:"transaction_ref"`
	ReceiptURL         string  `json:"receipt_url"`
	TotalPrice         int64   `json:"total_price"`
	Status             string  `json:"status"`
	AssignedRoomNumber *string `json:"assigned_room_number"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RequesterID = model.RequesterID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.GuestAddress = model.GuestAddress
	b.Occupation = model.Occupation
	b.EnrollmentID = model.EnrollmentID
	b.GovernmentID = model.GovernmentID
	b.RoomType = model.RoomType
	b.AC = model.AC
	b.FloorPreference = model.FloorPreference
	b.CheckIn = timezone.Format(model.StartAt, constant.DateTimeFormat)
	b.CheckOut = timezone.Format(model.EndAt, constant.DateTimeFormat)
	b.Nights = model.Nights
	b.Purpose = model.Purpose
	b.AmountPaid = model.AmountPaid
	b.TransactionRef = model.TransactionRef
	b.ReceiptURL = model.ReceiptURL
	b.TotalPrice = model.TotalPrice
	b.Status = model.Status
	b.AssignedRoomNumber = model.AssignedRoomNumber
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}
