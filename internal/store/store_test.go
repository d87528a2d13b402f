package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/models"
)

func TestSeedOccupancyConsistency(t *testing.T) {
	data := Seed(time.Now())

	roomByID := make(map[string]models.Room)
	for _, room := range data.Rooms {
		roomByID[room.ID] = room
		assert.LessOrEqual(t, len(room.Occupants), room.Capacity, "room %s over capacity", room.ID)
	}

	occupancy := make(map[string]string)
	for _, room := range data.Rooms {
		for _, sid := range room.Occupants {
			occupancy[sid] = room.ID
		}
	}

	for _, student := range data.Students {
		if student.RoomID == "" {
			assert.Empty(t, student.BuildingID, "unassigned student %s carries a building", student.ID)
			_, listed := occupancy[student.ID]
			assert.False(t, listed, "unassigned student %s appears in an occupant list", student.ID)
			continue
		}
		require.Equal(t, student.RoomID, occupancy[student.ID], "student %s room mismatch", student.ID)
		require.Equal(t, roomByID[student.RoomID].BuildingID, student.BuildingID, "student %s building mismatch", student.ID)
	}
}

func TestSeedRosterReferences(t *testing.T) {
	data := Seed(time.Now())

	students := make(map[string]struct{})
	for _, s := range data.Students {
		students[s.ID] = struct{}{}
	}
	buildings := make(map[string]struct{})
	for _, b := range data.Buildings {
		buildings[b.ID] = struct{}{}
	}

	for _, u := range data.Users {
		switch u.Role {
		case models.RoleDormManager:
			_, ok := buildings[u.BuildingID]
			assert.True(t, ok, "manager %s references unknown building", u.ID)
		case models.RoleStudent:
			_, ok := students[u.StudentID]
			assert.True(t, ok, "student user %s references unknown student", u.ID)
		}
	}

	for _, v := range data.Visitors {
		_, ok := students[v.StudentID]
		assert.True(t, ok, "visitor %s references unknown student", v.ID)
	}
}

func TestRemoveOccupantPreservesOrder(t *testing.T) {
	room := &models.Room{
		ID:        "room-1",
		Capacity:  4,
		Occupants: []string{"stu-a", "stu-b", "stu-c"},
	}

	RemoveOccupant(room, "stu-b")
	assert.Equal(t, []string{"stu-a", "stu-c"}, room.Occupants)

	RemoveOccupant(room, "stu-x")
	assert.Equal(t, []string{"stu-a", "stu-c"}, room.Occupants)
}

func TestUpdateRunsSingleCriticalSection(t *testing.T) {
	s := New(Seed(time.Now()))

	err := s.Update(func(d *Data) error {
		room := d.FindRoom("room-b-202")
		require.NotNil(t, room)
		student := d.FindStudent("stu-6")
		require.NotNil(t, student)

		room.Occupants = append(room.Occupants, student.ID)
		student.RoomID = room.ID
		student.BuildingID = room.BuildingID
		return nil
	})
	require.NoError(t, err)

	err = s.View(func(d *Data) error {
		assert.Equal(t, []string{"stu-6"}, d.FindRoom("room-b-202").Occupants)
		assert.Equal(t, "dorm-b", d.FindStudent("stu-6").BuildingID)
		return nil
	})
	require.NoError(t, err)
}
