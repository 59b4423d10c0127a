package dto

import (
	"time"

	roomModel "guesthouse/internal/domains/room/model"
	roomDto "guesthouse/internal/domains/room/model/dto"
	"guesthouse/shared/constant"
	"guesthouse/shared/timezone"
)

type QueryAvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	RoomType string `json:"room_type" validate:"omitempty,oneof=Single Double"`
	AC       *bool  `json:"ac"`
	Floor    string `json:"floor"     validate:"omitempty,max=20"`
}

// RoomFilter narrows the inventory to the requested category among rooms open for assignment.
func (q *QueryAvailabilityRequest) RoomFilter() roomDto.ListRoomsRequest {
	return roomDto.ListRoomsRequest{
		RoomType: q.RoomType,
		AC:       q.AC,
		Floor:    q.Floor,
		Status:   roomModel.StatusAvailable,
	}
}

type AvailabilityResponse struct {
	CheckIn             string                 `json:"check_in"`
	CheckOut            string                 `json:"check_out"`
	BusyRoomNumbers     []string               `json:"busy_room_numbers"`
	AvailableRooms      []roomDto.RoomResponse `json:"available_rooms"`
	TotalAvailableCount int                    `json:"total_available_count"`
}

func (a *AvailabilityResponse) FromModels(start, end time.Time, busy []string, free []roomModel.Room) {
	a.CheckIn = timezone.Format(start, constant.DateTimeFormat)
	a.CheckOut = timezone.Format(end, constant.DateTimeFormat)
	a.BusyRoomNumbers = busy

	if a.BusyRoomNumbers == nil {
		a.BusyRoomNumbers = []string{}
	}

	a.AvailableRooms = make([]roomDto.RoomResponse, len(free))
	for i, room := range free {
		a.AvailableRooms[i].FromModel(room)
	}

	a.TotalAvailableCount = len(free)
}
