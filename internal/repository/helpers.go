package repository

import "github.com/dormhub/dormhub-api/internal/models"

// cloneRoom copies a room including its occupant slice so callers never hold
// a reference into the store after the lock is released.
func cloneRoom(r models.Room) models.Room {
	out := r
	out.Occupants = append([]string(nil), r.Occupants...)
	return out
}

func cloneRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	for i, r := range rooms {
		out[i] = cloneRoom(r)
	}
	return out
}

func cloneVisitor(v models.Visitor) models.Visitor {
	out := v
	if v.CheckOutTime != nil {
		t := *v.CheckOutTime
		out.CheckOutTime = &t
	}
	return out
}
