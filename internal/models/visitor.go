package models

import "time"

// Visitor is a guest registered against a student. A nil CheckOutTime means
// the visitor is still on the premises.
type Visitor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	IDNumber     string     `json:"id_number"`
	StudentID    string     `json:"student_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

// Active reports whether the visitor has not checked out yet.
func (v Visitor) Active() bool {
	return v.CheckOutTime == nil
}
