package store

import (
	"time"

	"github.com/dormhub/dormhub-api/internal/models"
)

func ptrTime(t time.Time) *time.Time { return &t }

// Seed returns the fixed startup dataset. The ids are stable so that the
// role roster, room topology and cross-references stay consistent between
// restarts even though nothing is persisted.
func Seed(now time.Time) Data {
	return Data{
		Users: []models.User{
			{ID: "user-admin", Name: "Alice Smith", Role: models.RoleAdministrator},
			{ID: "user-manager-a", Name: "Bob Johnson", Role: models.RoleDormManager, BuildingID: "dorm-a"},
			{ID: "user-manager-b", Name: "Charlie Brown", Role: models.RoleDormManager, BuildingID: "dorm-b"},
			{ID: "user-student-1", Name: "David Lee", Role: models.RoleStudent, StudentID: "stu-1"},
			{ID: "user-student-5", Name: "Eve Williams", Role: models.RoleStudent, StudentID: "stu-5"},
		},
		Buildings: []models.Building{
			{ID: "dorm-a", Name: "Building A"},
			{ID: "dorm-b", Name: "Building B"},
		},
		Rooms: []models.Room{
			{ID: "room-a-101", Number: "101", BuildingID: "dorm-a", Capacity: 4, Occupants: []string{"stu-1", "stu-2"}},
			{ID: "room-a-102", Number: "102", BuildingID: "dorm-a", Capacity: 4, Occupants: []string{"stu-3"}},
			{ID: "room-b-201", Number: "201", BuildingID: "dorm-b", Capacity: 2, Occupants: []string{"stu-4", "stu-5"}},
			{ID: "room-b-202", Number: "202", BuildingID: "dorm-b", Capacity: 2, Occupants: []string{}},
		},
		Students: []models.Student{
			{ID: "stu-1", Name: "David Lee", StudentNumber: "S001", Gender: models.GenderMale, Class: "CS 101", RoomID: "room-a-101", BuildingID: "dorm-a"},
			{ID: "stu-2", Name: "Frank Green", StudentNumber: "S002", Gender: models.GenderMale, Class: "CS 101", RoomID: "room-a-101", BuildingID: "dorm-a"},
			{ID: "stu-3", Name: "Grace Hall", StudentNumber: "S003", Gender: models.GenderFemale, Class: "BIO 202", RoomID: "room-a-102", BuildingID: "dorm-a"},
			{ID: "stu-4", Name: "Heidi White", StudentNumber: "S004", Gender: models.GenderFemale, Class: "ENG 301", RoomID: "room-b-201", BuildingID: "dorm-b"},
			{ID: "stu-5", Name: "Eve Williams", StudentNumber: "S005", Gender: models.GenderFemale, Class: "ENG 301", RoomID: "room-b-201", BuildingID: "dorm-b"},
			{ID: "stu-6", Name: "Ivan Black", StudentNumber: "S006", Gender: models.GenderMale, Class: "MATH 150"},
		},
		Repairs: []models.RepairRequest{
			{ID: "rep-1", StudentID: "stu-1", RoomID: "room-a-101", BuildingID: "dorm-a", Description: "Leaky faucet in the bathroom", Status: models.RepairPending, SubmittedAt: now.Add(-24 * time.Hour)},
			{ID: "rep-2", StudentID: "stu-5", RoomID: "room-b-201", BuildingID: "dorm-b", Description: "Desk lamp is not working", Status: models.RepairInProgress, SubmittedAt: now.Add(-48 * time.Hour)},
			{ID: "rep-3", StudentID: "stu-3", RoomID: "room-a-102", BuildingID: "dorm-a", Description: "Window latch is broken", Status: models.RepairCompleted, SubmittedAt: now.Add(-72 * time.Hour)},
		},
		HygieneChecks: []models.HygieneCheck{
			{ID: "hyg-1", RoomID: "room-a-101", BuildingID: "dorm-a", Score: 95, Notes: "Very clean and tidy.", CheckedAt: now},
			{ID: "hyg-2", RoomID: "room-a-102", BuildingID: "dorm-a", Score: 80, Notes: "Some clutter on the floor.", CheckedAt: now},
			{ID: "hyg-3", RoomID: "room-b-201", BuildingID: "dorm-b", Score: 90, Notes: "Good condition.", CheckedAt: now},
		},
		Visitors: []models.Visitor{
			{ID: "vis-1", Name: "John Doe", IDNumber: "123456789", StudentID: "stu-1", CheckInTime: now.Add(-time.Hour), CheckOutTime: ptrTime(now.Add(-30 * time.Minute))},
			{ID: "vis-2", Name: "Jane Roe", IDNumber: "987654321", StudentID: "stu-5", CheckInTime: now.Add(-2 * time.Hour)},
		},
	}
}
