package models

// Role represents the available roles for the RBAC system.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleDormManager   Role = "DORM_MANAGER"
	RoleStudent       Role = "STUDENT"
)

// User is a session identity drawn from the fixed login roster. Dorm managers
// carry the building they oversee, students the student record they belong to.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	BuildingID string `json:"building_id,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
}
