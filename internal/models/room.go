package models

// Room is a unit inside a building. Occupants holds student ids and may never
// exceed Capacity; every mutation path re-checks that bound before appending.
type Room struct {
	ID         string   `json:"id"`
	Number     string   `json:"number"`
	BuildingID string   `json:"building_id"`
	Capacity   int      `json:"capacity"`
	Occupants  []string `json:"occupants"`
}

// HasVacancy reports whether another occupant still fits.
func (r Room) HasVacancy() bool {
	return len(r.Occupants) < r.Capacity
}
