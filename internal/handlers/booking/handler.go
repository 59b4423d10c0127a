package booking

import (
	"net/http"
	"strconv"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/service"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/pending", handler.GetPendingBookings)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/approve", handler.ApproveBooking)
		routerGroup.Put("/{id}/reject", handler.RejectBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking files a booking request together with its payment receipt.
// @Summary Create a booking request
// @Description Submit a pending booking for a room category. The receipt is stored and the guest is notified.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param guest_name formData string true "Guest name"
// @Param guest_email formData string true "Guest email"
// @Param guest_phone formData string true "Guest phone"
// @Param guest_address formData string true "Guest address"
// @Param occupation formData string false "Occupation"
// @Param enrollment_id formData string false "Enrollment ID"
// @Param government_id formData string false "Government ID"
// @Param room_type formData string true "Room type (Single, Double)"
// @Param ac formData boolean true "Air conditioned"
// @Param floor_preference formData string false "Floor preference"
// @Param check_in formData string true "Check-in (RFC3339 or YYYY-MM-DD)"
// @Param check_out formData string true "Check-out (RFC3339 or YYYY-MM-DD)"
// @Param purpose formData string true "Purpose of stay"
// @Param amount_paid formData integer false "Amount paid"
// @Param transaction_ref formData string true "Payment transaction reference"
// @Param receipt formData file true "Payment receipt (png, jpeg or pdf)"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequestFromString("request must be multipart/form-data")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	defer func() {
		if err := request.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("failed to remove multipart temp files")
		}
	}()

	for name := range request.MultipartForm.Value {
		if !dto.IsCreateBookingFormField(name) {
			err := failure.ValidationField(name, "is not a recognised field")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	for name := range request.MultipartForm.File {
		if name != constant.FormFileReceipt {
			err := failure.ValidationField(name, "is not a recognised field")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	ac, err := shared.ParseOptionalBool(model.FieldAC, request.FormValue(model.FieldAC))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{
		GuestName:       request.FormValue("guest_name"),
		GuestEmail:      request.FormValue("guest_email"),
		GuestPhone:      request.FormValue("guest_phone"),
		GuestAddress:    request.FormValue("guest_address"),
		Occupation:      request.FormValue("occupation"),
		EnrollmentID:    request.FormValue("enrollment_id"),
		GovernmentID:    request.FormValue("government_id"),
		RoomType:        request.FormValue(model.FieldRoomType),
		AC:              ac,
		FloorPreference: request.FormValue("floor_preference"),
		CheckIn:         request.FormValue("check_in"),
		CheckOut:        request.FormValue("check_out"),
		Purpose:         request.FormValue("purpose"),
		TransactionRef:  request.FormValue("transaction_ref"),
	}

	if amount := request.FormValue("amount_paid"); amount != constant.Empty {
		paid, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			err = failure.ValidationField("amount_paid", "must be a whole number")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		req.AmountPaid = paid
	}

	file, fileHeader, err := request.FormFile(constant.FormFileReceipt)
	if err == nil {
		req.Receipt = fileHeader
		req.ReceiptFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.ID + " requested by user " + booking.RequesterID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists every booking for administrators.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filters and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param room_type query string false "Filter by room type (Single, Double)"
// @Param requester_id query string false "Filter by requester"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	req := dto.ListBookingsRequest{
		Status:      query.Get(model.FieldStatus),
		RoomType:    query.Get(model.FieldRoomType),
		RequesterID: query.Get(model.FieldRequesterID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetPendingBookings lists bookings awaiting a decision, oldest first.
// @Summary Get pending bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Pending bookings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingBookings")
	defer scope.End()

	bookings, err := handler.service.ListPending(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings lists the bookings filed by the authenticated user.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "User's bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.ListForRequester(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Students only see their own bookings.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ApproveBooking assigns a concrete room to a pending booking.
// @Summary Approve a booking
// @Description Atomically checks the room is free for the stay and assigns it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApproveBookingRequest true "Approve Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Approved booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/approve [put]
// @Security BearerAuth
func (handler *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApproveBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Approve(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Str("room_number", req.RoomNumber).Msg("failed to approve booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + id + " approved into room " + req.RoomNumber + " by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// RejectBooking declines a pending booking.
// @Summary Reject a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Rejected booking"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reject [put]
// @Security BearerAuth
func (handler *Handler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Reject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to reject booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + id + " rejected by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking and its stored receipt.
// @Summary Delete a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
