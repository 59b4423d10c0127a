package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"guesthouse/infras/otel/mocks"
	"guesthouse/internal/domains/availability/model/dto"
	"guesthouse/internal/domains/availability/service"
	bookingMocks "guesthouse/internal/domains/booking/mocks"
	bookingModel "guesthouse/internal/domains/booking/model"
	roomMocks "guesthouse/internal/domains/room/mocks"
	roomModel "guesthouse/internal/domains/room/model"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doubles() []roomModel.Room {
	return []roomModel.Room{
		{RoomNumber: "S01", Floor: "Second", RoomType: roomModel.TypeDouble, Price: 600, Status: roomModel.StatusAvailable},
		{RoomNumber: "S02", Floor: "Second", RoomType: roomModel.TypeDouble, Price: 600, Status: roomModel.StatusAvailable},
		{RoomNumber: "S03", Floor: "Second", RoomType: roomModel.TypeDouble, Price: 600, Status: roomModel.StatusAvailable},
	}
}

func TestAvailabilityService_Query(t *testing.T) {
	ac := false

	tests := []struct {
		name          string
		req           dto.QueryAvailabilityRequest
		setupMock     func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom)
		wantCode      int
		wantBusy      []string
		wantAvailable []string
	}{
		{
			name: "busy rooms are never offered",
			req:  dto.QueryAvailabilityRequest{CheckIn: "2027-01-11", CheckOut: "2027-01-13", RoomType: roomModel.TypeDouble, AC: &ac},
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				bookings.EXPECT().
					BusyRoomNumbers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, interval bookingModel.Interval) ([]string, error) {
						assert.True(t, interval.End.After(interval.Start))

						return []string{"G04", "S01"}, nil
					})

				rooms.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]roomModel.Room, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, roomModel.TypeDouble, args[roomModel.FieldRoomType])
						assert.Equal(t, false, args[roomModel.FieldAC])
						assert.Equal(t, roomModel.StatusAvailable, args[roomModel.FieldStatus])

						return doubles(), nil
					})
			},
			wantBusy:      []string{"G04", "S01"},
			wantAvailable: []string{"S02", "S03"},
		},
		{
			name: "empty inventory",
			req:  dto.QueryAvailabilityRequest{CheckIn: "2027-01-11", CheckOut: "2027-01-13"},
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				bookings.EXPECT().BusyRoomNumbers(gomock.Any(), gomock.Any()).Return(nil, nil)
				rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantBusy:      []string{},
			wantAvailable: []string{},
		},
		{
			name:      "checkout before checkin",
			req:       dto.QueryAvailabilityRequest{CheckIn: "2027-01-13", CheckOut: "2027-01-11"},
			setupMock: func(*bookingMocks.MockBooking, *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date",
			req:       dto.QueryAvailabilityRequest{CheckIn: "13th", CheckOut: "2027-01-11"},
			setupMock: func(*bookingMocks.MockBooking, *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "storage failure",
			req:  dto.QueryAvailabilityRequest{CheckIn: "2027-01-11", CheckOut: "2027-01-13"},
			setupMock: func(bookings *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				bookings.EXPECT().BusyRoomNumbers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookings := bookingMocks.NewMockBooking(ctrl)
			rooms := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(bookings, rooms)

			svc := service.New(bookings, rooms, mocks.NewOtel())

			res, err := svc.Query(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBusy, res.BusyRoomNumbers)

			available := make([]string, 0, len(res.AvailableRooms))
			for _, room := range res.AvailableRooms {
				available = append(available, room.RoomNumber)
				assert.NotContains(t, res.BusyRoomNumbers, room.RoomNumber)
			}

			assert.Equal(t, tt.wantAvailable, available)
			assert.Equal(t, len(tt.wantAvailable), res.TotalAvailableCount)
		})
	}
}

func TestAvailabilityService_Today(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookings := bookingMocks.NewMockBooking(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)

	bookings.EXPECT().
		BusyRoomNumbers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, interval bookingModel.Interval) ([]string, error) {
			assert.Equal(t, 24.0, interval.End.Sub(interval.Start).Hours())
			assert.Zero(t, interval.Start.Hour())

			return []string{"S02"}, nil
		})
	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(doubles(), nil)

	res, err := service.New(bookings, rooms, mocks.NewOtel()).Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"S02"}, res.BusyRoomNumbers)
	assert.Equal(t, 2, res.TotalAvailableCount)
}
