package dto

// DashboardStats is the role-scoped dashboard payload. Administrators see
// campus-wide counters, dorm managers the same counters restricted to their
// building, students their own room and pending repairs with the remaining
// counters zeroed.
type DashboardStats struct {
	TotalStudents  int    `json:"total_students"`
	PendingRepairs int    `json:"pending_repairs"`
	ActiveVisitors int    `json:"active_visitors"`
	RoomsOccupied  int    `json:"rooms_occupied"`
	RoomInfo       string `json:"room_info,omitempty"`
}
