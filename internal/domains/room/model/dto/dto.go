package dto

import (
	"guesthouse/internal/domains/room/model"
	gDto "guesthouse/shared/dto"
)

type ListRoomsRequest struct {
	RoomType string `json:"room_type" validate:"omitempty,oneof=Single Double"`
	AC       *bool  `json:"ac"`
	Floor    string `json:"floor"     validate:"omitempty,max=20"`
	Status   string `json:"status"    validate:"omitempty,oneof=available maintenance"`
}

func (r *ListRoomsRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if r.RoomType != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomType, Value: r.RoomType, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if r.AC != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldAC, Value: *r.AC, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if r.Floor != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldFloor, Value: r.Floor, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if r.Status != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: r.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available maintenance"`
}

type RoomResponse struct {
	RoomNumber string `json:"room_number"`
	Floor      string `json:"floor"`
	RoomType   string `json:"room_type"`
	AC         bool   `json:"ac"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.RoomType = model.RoomType
	r.AC = model.AC
	r.Price = model.Price
	r.Status = model.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
