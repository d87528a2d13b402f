package models

// Gender values accepted for student records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Student represents a resident. BuildingID is set if and only if RoomID is
// set, and always equals the building owning that room; the pairing is
// maintained by the mutation paths, never recomputed on read. An empty RoomID
// means the student is unassigned.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StudentNumber string `json:"student_number"`
	Gender        string `json:"gender"`
	Class         string `json:"class"`
	RoomID        string `json:"room_id,omitempty"`
	BuildingID    string `json:"building_id,omitempty"`
}

// Assigned reports whether the student currently has a room.
func (s Student) Assigned() bool {
	return s.RoomID != ""
}
