package models

import "time"

// HygieneCheck records an inspection score for a room. Immutable once created.
// BuildingID is denormalized from the room at creation time.
type HygieneCheck struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	BuildingID string    `json:"building_id"`
	Score      int       `json:"score"`
	Notes      string    `json:"notes"`
	CheckedAt  time.Time `json:"checked_at"`
}
