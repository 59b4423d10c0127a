package model

import "guesthouse/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber = "room_number"
	FieldFloor      = "floor"
	FieldRoomType   = "room_type"
	FieldAC         = "ac"
	FieldPrice      = "price"
	FieldStatus     = "status"
)

const (
	TypeSingle = "Single"
	TypeDouble = "Double"

	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
)

type Room struct {
	RoomNumber string `db:"room_number"`
	Floor      string `db:"floor"`
	RoomType   string `db:"room_type"`
	AC         bool   `db:"ac"`
	Price      int64  `db:"price"`
	Status     string `db:"status"`
	model.Metadata
}

// Matches reports whether the room belongs to the requested category.
func (r Room) Matches(roomType string, ac bool) bool {
	return r.RoomType == roomType && r.AC == ac
}

func (r Room) Assignable() bool {
	return r.Status == StatusAvailable
}
