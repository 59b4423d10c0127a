package availability

import (
	"net/http"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/availability/model/dto"
	"guesthouse/internal/domains/availability/service"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.QueryAvailability)
		routerGroup.Get("/today", handler.TodayAvailability)
	})
}

// QueryAvailability reports which rooms are free for a stay.
// @Summary Query room availability
// @Description Busy rooms hold an approved booking overlapping [check_in, check_out). Rooms under maintenance are never available.
// @Tags Availability
// @Produce json
// @Param check_in query string true "Check-in (RFC3339 or YYYY-MM-DD)"
// @Param check_out query string true "Check-out (RFC3339 or YYYY-MM-DD)"
// @Param room_type query string false "Room type (Single, Double)"
// @Param ac query boolean false "Air conditioned"
// @Param floor query string false "Floor"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
// @Security BearerAuth
func (handler *Handler) QueryAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QueryAvailability")
	defer scope.End()

	query := r.URL.Query()

	ac, err := shared.ParseOptionalBool("ac", query.Get("ac"))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.QueryAvailabilityRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
		RoomType: query.Get("room_type"),
		AC:       ac,
		Floor:    query.Get("floor"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Query(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to query availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// TodayAvailability reports occupancy for the current day in the application timezone.
// @Summary Today's availability
// @Tags Availability
// @Produce json
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability for today"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/today [get]
// @Security BearerAuth
func (handler *Handler) TodayAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TodayAvailability")
	defer scope.End()

	res, err := handler.service.Today(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
