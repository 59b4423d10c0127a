package model

import (
	roomModel "guesthouse/internal/domains/room/model"
)

// FreeRooms keeps the rooms that are open for assignment and not held by any busy booking.
// The order of rooms is preserved.
func FreeRooms(rooms []roomModel.Room, busy []string) []roomModel.Room {
	held := make(map[string]struct{}, len(busy))
	for _, number := range busy {
		held[number] = struct{}{}
	}

	free := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		if !room.Assignable() {
			continue
		}

		if _, ok := held[room.RoomNumber]; ok {
			continue
		}

		free = append(free, room)
	}

	return free
}
