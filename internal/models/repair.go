package models

import "time"

// RepairStatus enumerates the lifecycle of a repair request. Transitions are
// unordered: a privileged actor may move a request to any status.
type RepairStatus string

const (
	RepairPending    RepairStatus = "Pending"
	RepairInProgress RepairStatus = "In Progress"
	RepairCompleted  RepairStatus = "Completed"
)

// Valid reports whether the value is a known status.
func (s RepairStatus) Valid() bool {
	switch s {
	case RepairPending, RepairInProgress, RepairCompleted:
		return true
	}
	return false
}

// RepairRequest is a maintenance report filed for a room. BuildingID is
// denormalized from the room at creation time and never recomputed.
type RepairRequest struct {
	ID          string       `json:"id"`
	StudentID   string       `json:"student_id"`
	RoomID      string       `json:"room_id"`
	BuildingID  string       `json:"building_id"`
	Description string       `json:"description"`
	Status      RepairStatus `json:"status"`
	SubmittedAt time.Time    `json:"submitted_at"`
}
