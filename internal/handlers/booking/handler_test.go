package booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"guesthouse/infras/otel/mocks"
	bookingMocks "guesthouse/internal/domains/booking/mocks"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/handlers/booking"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newRouter(svc *bookingMocks.MockBookingService) http.Handler {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func multipartBody(t *testing.T, values map[string]string, withReceipt bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range values {
		require.NoError(t, writer.WriteField(name, value))
	}

	if withReceipt {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="receipt"; filename="receipt.png"`)
		header.Set("Content-Type", "image/png")

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(pngHeader)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validForm() map[string]string {
	return map[string]string{
		"guest_name":      "Asha Rao",
		"guest_email":     "asha@example.com",
		"guest_phone":     "9876543210",
		"guest_address":   "12 Lake Road",
		"room_type":       "Single",
		"ac":              "true",
		"check_in":        "2026-11-01",
		"check_out":       "2026-11-03",
		"purpose":         "Convocation",
		"amount_paid":     "800",
		"transaction_ref": "TXN-42",
	}
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body.Error
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name        string
		form        func() map[string]string
		withReceipt bool
		setupMock   func(svc *bookingMocks.MockBookingService)
		wantCode    int
		wantError   string
	}{
		{
			name:        "created",
			form:        validForm,
			withReceipt: true,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "Asha Rao", req.GuestName)
						assert.Equal(t, int64(800), req.AmountPaid)
						require.NotNil(t, req.AC)
						assert.True(t, *req.AC)
						assert.Equal(t, "receipt.png", req.Receipt.Filename)

						return dto.BookingResponse{ID: "booking-1", RequesterID: "user-1", Status: "pending"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "unknown field rejected",
			form: func() map[string]string {
				form := validForm()
				form["room_number"] = "G01"

				return form
			},
			withReceipt: true,
			wantCode:    http.StatusBadRequest,
			wantError:   "room_number is not a recognised field",
		},
		{
			name: "amount is not a number",
			form: func() map[string]string {
				form := validForm()
				form["amount_paid"] = "eight hundred"

				return form
			},
			withReceipt: true,
			wantCode:    http.StatusBadRequest,
			wantError:   "amount_paid must be a whole number",
		},
		{
			name: "ac is not a boolean",
			form: func() map[string]string {
				form := validForm()
				form["ac"] = "yes"

				return form
			},
			withReceipt: true,
			wantCode:    http.StatusBadRequest,
			wantError:   "ac must be a boolean",
		},
		{
			name:        "missing receipt",
			form:        validForm,
			withReceipt: false,
			wantCode:    http.StatusBadRequest,
			wantError:   "receipt",
		},
		{
			name:        "room category unavailable",
			form:        validForm,
			withReceipt: true,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("no rooms of the requested category are free"))
			},
			wantCode:  http.StatusConflict,
			wantError: "no rooms of the requested category are free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBookingService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			body, contentType := multipartBody(t, tt.form(), tt.withReceipt)

			request := httptest.NewRequest(http.MethodPost, "/bookings/", body)
			request.Header.Set(constant.RequestHeaderContentType, contentType)

			recorder := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantError != "" {
				assert.Contains(t, errorMessage(t, recorder), tt.wantError)
			}
		})
	}
}

func TestHandler_CreateBooking_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(`{"guest_name":"Asha"}`))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "request must be multipart/form-data", errorMessage(t, recorder))
}

func TestHandler_ApproveBooking(t *testing.T) {
	room := "F03"

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "approved",
			body: `{"room_number":"F03"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Approve(gomock.Any(), "booking-1", dto.ApproveBookingRequest{RoomNumber: room}).
					Return(dto.BookingResponse{ID: "booking-1", Status: "approved", AssignedRoomNumber: &room}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "room number required",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown body field",
			body:     `{"room_number":"F03","status":"approved"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room taken for overlapping stay",
			body: `{"room_number":"F03"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Approve(gomock.Any(), "booking-1", gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("room is already booked for an overlapping stay"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "already processed",
			body: `{"room_number":"F03"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Approve(gomock.Any(), "booking-1", gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("booking already processed"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBookingService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			request := httptest.NewRequest(http.MethodPut, "/bookings/booking-1/approve", strings.NewReader(tt.body))
			request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			recorder := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_RejectBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	svc.EXPECT().
		Reject(gomock.Any(), "missing").
		Return(dto.BookingResponse{}, failure.NotFound("booking"))

	request := httptest.NewRequest(http.MethodPut, "/bookings/missing/reject", nil)
	recorder := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_GetMyBookings(t *testing.T) {
	t.Run("requires an authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := bookingMocks.NewMockBookingService(ctrl)

		request := httptest.NewRequest(http.MethodGet, "/bookings/mine", nil)
		recorder := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("lists the caller's bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := bookingMocks.NewMockBookingService(ctrl)

		svc.EXPECT().
			ListForRequester(gomock.Any(), "user-1").
			Return(dto.GetBookingsResponse{
				Bookings:  []dto.BookingResponse{{ID: "booking-1"}, {ID: "booking-2"}},
				TotalPage: 1,
				TotalData: 2,
			}, nil)

		request := httptest.NewRequest(http.MethodGet, "/bookings/mine", nil)
		request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, "user-1"))

		recorder := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data dto.GetBookingsResponse `json:"data"`
		}

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body.Data.Bookings, 2)
	})

	t.Run("service failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := bookingMocks.NewMockBookingService(ctrl)

		svc.EXPECT().
			ListForRequester(gomock.Any(), "user-1").
			Return(dto.GetBookingsResponse{}, errors.New("db down"))

		request := httptest.NewRequest(http.MethodGet, "/bookings/mine", nil)
		request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, "user-1"))

		recorder := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
