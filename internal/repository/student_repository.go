package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/store"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// StudentPatch describes a partial student update. Nil fields are left
// untouched. A non-nil empty RoomID clears the assignment.
type StudentPatch struct {
	Name          *string
	StudentNumber *string
	Gender        *string
	Class         *string
	RoomID        *string
}

// StudentRepository owns every mutation that touches student records. Room
// membership changes run inside a single store update so capacity limits
// and the room/building pairing can never be observed half-applied.
type StudentRepository struct {
	store *store.Store
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(s *store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// List returns all students.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := r.store.View(func(d *store.Data) error {
		out = append([]models.Student(nil), d.Students...)
		return nil
	})
	return out, err
}

// FindByID returns a single student.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var out *models.Student
	err := r.store.View(func(d *store.Data) error {
		if s := d.FindStudent(id); s != nil {
			copied := *s
			out = &copied
			return nil
		}
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unassigned returns every student without a room.
func (r *StudentRepository) Unassigned(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := r.store.View(func(d *store.Data) error {
		for _, s := range d.Students {
			if !s.Assigned() {
				out = append(out, s)
			}
		}
		return nil
	})
	return out, err
}

// Insert appends a new student under a freshly generated id. Student numbers
// are deliberately not checked for uniqueness: two identical payloads yield
// two distinct records.
func (r *StudentRepository) Insert(ctx context.Context, student models.Student) (*models.Student, error) {
	student.ID = fmt.Sprintf("stu-%s", uuid.NewString())
	student.RoomID = ""
	student.BuildingID = ""
	err := r.store.Update(func(d *store.Data) error {
		d.Students = append(d.Students, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update merges the patch over the stored record. When the patch changes the
// room reference the target room's capacity is verified before the student is
// detached from the old room, so a capacity failure leaves every collection
// untouched. The building reference always follows the room reference.
func (r *StudentRepository) Update(ctx context.Context, id string, patch StudentPatch) (*models.Student, error) {
	var out models.Student
	err := r.store.Update(func(d *store.Data) error {
		student := d.FindStudent(id)
		if student == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}

		if patch.RoomID != nil && *patch.RoomID != student.RoomID {
			newRoomID := *patch.RoomID

			var newRoom *models.Room
			if newRoomID != "" {
				newRoom = d.FindRoom(newRoomID)
				if newRoom == nil {
					return appErrors.Clone(appErrors.ErrNotFound, "room not found")
				}
				if !newRoom.HasVacancy() {
					return appErrors.Clone(appErrors.ErrRoomFull, "target room is at capacity")
				}
			}

			if student.RoomID != "" {
				if oldRoom := d.FindRoom(student.RoomID); oldRoom != nil {
					store.RemoveOccupant(oldRoom, id)
				}
			}

			if newRoom != nil {
				newRoom.Occupants = append(newRoom.Occupants, id)
				student.RoomID = newRoom.ID
				student.BuildingID = newRoom.BuildingID
			} else {
				student.RoomID = ""
				student.BuildingID = ""
			}
		}

		if patch.Name != nil {
			student.Name = *patch.Name
		}
		if patch.StudentNumber != nil {
			student.StudentNumber = *patch.StudentNumber
		}
		if patch.Gender != nil {
			student.Gender = *patch.Gender
		}
		if patch.Class != nil {
			student.Class = *patch.Class
		}

		out = *student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the student and detaches them from their room's occupant
// list, preserving the order of the remaining occupants.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(d *store.Data) error {
		idx := -1
		for i := range d.Students {
			if d.Students[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}

		if roomID := d.Students[idx].RoomID; roomID != "" {
			if room := d.FindRoom(roomID); room != nil {
				store.RemoveOccupant(room, id)
			}
		}

		d.Students = append(d.Students[:idx], d.Students[idx+1:]...)
		return nil
	})
}

// AssignRoom places an unassigned student into a room. It fails without side
// effects when either id is unknown, the student already has a room, or the
// room is at capacity.
func (r *StudentRepository) AssignRoom(ctx context.Context, studentID, roomID string) (*models.Student, *models.Room, error) {
	var (
		outStudent models.Student
		outRoom    models.Room
	)
	err := r.store.Update(func(d *store.Data) error {
		student := d.FindStudent(studentID)
		if student == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		room := d.FindRoom(roomID)
		if room == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		if student.Assigned() {
			return appErrors.ErrAlreadyAssigned
		}
		if !room.HasVacancy() {
			return appErrors.ErrRoomFull
		}

		room.Occupants = append(room.Occupants, studentID)
		student.RoomID = room.ID
		student.BuildingID = room.BuildingID

		outStudent = *student
		outRoom = cloneRoom(*room)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &outStudent, &outRoom, nil
}
