package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/availability/model"
	"guesthouse/internal/domains/availability/model/dto"
	bookingModel "guesthouse/internal/domains/booking/model"
	bookingRepo "guesthouse/internal/domains/booking/repository"
	roomModel "guesthouse/internal/domains/room/model"
	roomDto "guesthouse/internal/domains/room/model/dto"
	roomRepo "guesthouse/internal/domains/room/repository"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Availability answers which rooms are free for a stay. Results are always read fresh.
type Availability interface {
	Query(ctx context.Context, req dto.QueryAvailabilityRequest) (dto.AvailabilityResponse, error)
	Today(ctx context.Context) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, otel otel.Otel) Availability {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Query(ctx context.Context, req dto.QueryAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Query")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	interval, err := bookingModel.ParseInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.query(ctx, interval, req.RoomFilter())
}

// Today reports occupancy from midnight today to midnight tomorrow in the application timezone.
func (s *serviceImpl) Today(ctx context.Context) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Today")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start := timezone.StartOfDay(timezone.Now())
	interval := bookingModel.Interval{Start: start, End: start.AddDate(0, 0, 1)}

	req := dto.QueryAvailabilityRequest{}

	return s.query(ctx, interval, req.RoomFilter())
}

func (s *serviceImpl) query(ctx context.Context, interval bookingModel.Interval, filter roomDto.ListRoomsRequest) (res dto.AvailabilityResponse, err error) {
	busy, err := s.bookingRepo.BusyRoomNumbers(ctx, interval)
	if err != nil {
		log.Error().Err(err).Msg("failed to get busy rooms")

		return res, fmt.Errorf("failed to get busy rooms: %w", err)
	}

	params := gDto.QueryParams{SortBy: roomModel.TableName + "." + roomModel.FieldRoomNumber, SortDir: gDto.SortDirAsc}

	rooms, err := s.roomRepo.GetAll(ctx, params, filter.ToFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(interval.Start, interval.End, busy, model.FreeRooms(rooms, busy))

	return res, nil
}
