package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"guesthouse/shared/failure"
	"guesthouse/shared/validator"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	GuestName  string `json:"guest_name"  validate:"required,max=20"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	RoomType   string `json:"room_type"   validate:"required,oneof=Single Double"`
	Nights     int    `json:"nights"      validate:"gte=1,lte=30"`
}

type receiptUpload struct {
	Receipt *multipart.FileHeader `form:"receipt" json:"-" validate:"required,mimetypes=image/png image/jpeg application/pdf"`
}

func receipt(contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "receipt", Header: header, Size: 1024}
}

func TestValidateStruct(t *testing.T) {
	valid := stayRequest{GuestName: "Asha", GuestEmail: "asha@example.com", RoomType: "Single", Nights: 2}

	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *stayRequest) {}},
		{name: "missing name", mutate: func(r *stayRequest) { r.GuestName = "" }, wantErr: "guest_name is required"},
		{name: "bad email", mutate: func(r *stayRequest) { r.GuestEmail = "asha" }, wantErr: "guest_email must be a valid email address"},
		{name: "unknown room type", mutate: func(r *stayRequest) { r.RoomType = "Suite" }, wantErr: "room_type must be one of Single Double"},
		{name: "zero nights", mutate: func(r *stayRequest) { r.Nights = 0 }, wantErr: "nights must be greater than or equal to 1"},
		{name: "stay too long", mutate: func(r *stayRequest) { r.Nights = 31 }, wantErr: "nights must be less than or equal to 30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, failure.Is(err, http.StatusBadRequest))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"guest_name":"Asha","guest_email":"asha@example.com","room_type":"Double","nights":1}`},
		{name: "malformed json", body: `{"guest_name":`, wantErr: true},
		{name: "unknown field", body: `{"guest_name":"Asha","guest_email":"asha@example.com","room_type":"Double","nights":1,"room_number":"S01"}`, wantErr: true},
		{name: "fails validation", body: `{"guest_name":"Asha","guest_email":"asha@example.com","room_type":"Double"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.True(t, failure.Is(err, http.StatusBadRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_ReceiptMimetype(t *testing.T) {
	tests := []struct {
		name    string
		receipt *multipart.FileHeader
		wantErr string
	}{
		{name: "png", receipt: receipt("image/png")},
		{name: "pdf with parameters", receipt: receipt("application/pdf; charset=binary")},
		{name: "missing", receipt: nil, wantErr: "receipt is required"},
		{name: "executable", receipt: receipt("application/x-msdownload"), wantErr: "receipt must be one of image/png image/jpeg application/pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&receiptUpload{Receipt: tt.receipt})

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("F03", "required,max=10"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
