package dto

import "github.com/dormhub/dormhub-api/internal/models"

// RoomWithDetails is the read-side room view with resolved display names.
// Unresolvable references are substituted with "N/A" rather than failing.
type RoomWithDetails struct {
	models.Room
	BuildingName  string   `json:"building_name"`
	OccupantNames []string `json:"occupant_names"`
}
