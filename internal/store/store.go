package store

import (
	"sync"

	"github.com/dormhub/dormhub-api/internal/models"
)

// Data holds every collection of the process-wide record store. Repositories
// receive it through View/Update and must never retain references past the
// callback.
type Data struct {
	Users         []models.User
	Buildings     []models.Building
	Rooms         []models.Room
	Students      []models.Student
	Repairs       []models.RepairRequest
	HygieneChecks []models.HygieneCheck
	Visitors      []models.Visitor
}

// Store guards the record collections with a single reader/writer lock. Every
// mutation runs as one Update callback, so a compound write (capacity check
// plus occupant push plus student field change) is a single critical section:
// concurrent readers observe either its pre- or post-state, never a torn
// intermediate one.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// New creates a store initialised with the given dataset.
func New(data Data) *Store {
	return &Store{data: data}
}

// View runs fn under the read lock. fn must not mutate the dataset.
func (s *Store) View(fn func(d *Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// Update runs fn under the write lock. If fn returns an error the caller is
// expected to have left the dataset untouched; the store does not snapshot.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// FindRoom returns a pointer into the dataset for in-place mutation. Only
// valid inside a View/Update callback.
func (d *Data) FindRoom(id string) *models.Room {
	for i := range d.Rooms {
		if d.Rooms[i].ID == id {
			return &d.Rooms[i]
		}
	}
	return nil
}

// FindStudent returns a pointer into the dataset. Only valid inside a
// View/Update callback.
func (d *Data) FindStudent(id string) *models.Student {
	for i := range d.Students {
		if d.Students[i].ID == id {
			return &d.Students[i]
		}
	}
	return nil
}

// FindBuilding returns a pointer into the dataset. Only valid inside a
// View/Update callback.
func (d *Data) FindBuilding(id string) *models.Building {
	for i := range d.Buildings {
		if d.Buildings[i].ID == id {
			return &d.Buildings[i]
		}
	}
	return nil
}

// RemoveOccupant deletes studentID from the room's occupant list, preserving
// the order of the remaining ids.
func RemoveOccupant(room *models.Room, studentID string) {
	kept := room.Occupants[:0]
	for _, id := range room.Occupants {
		if id != studentID {
			kept = append(kept, id)
		}
	}
	room.Occupants = kept
}
