package repository

import (
	"context"

	"github.com/dormhub/dormhub-api/internal/dto"
	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/store"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// placeholder substituted for display names that cannot be resolved.
const notAvailable = "N/A"

// RoomRepository reads room state. Rooms are only mutated indirectly through
// student assignment, so this repository is read-only.
type RoomRepository struct {
	store *store.Store
}

// NewRoomRepository constructs the repository.
func NewRoomRepository(s *store.Store) *RoomRepository {
	return &RoomRepository{store: s}
}

// List returns all rooms.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	err := r.store.View(func(d *store.Data) error {
		out = cloneRooms(d.Rooms)
		return nil
	})
	return out, err
}

// FindByID returns a single room.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	var out *models.Room
	err := r.store.View(func(d *store.Data) error {
		if room := d.FindRoom(id); room != nil {
			copied := cloneRoom(*room)
			out = &copied
			return nil
		}
		return appErrors.Clone(appErrors.ErrNotFound, "room not found")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Available returns rooms with at least one free place.
func (r *RoomRepository) Available(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	err := r.store.View(func(d *store.Data) error {
		for _, room := range d.Rooms {
			if room.HasVacancy() {
				out = append(out, cloneRoom(room))
			}
		}
		return nil
	})
	return out, err
}

// ListWithDetails resolves building and occupant display names for the
// read-side room view. Dangling references resolve to "N/A" instead of
// failing the whole read.
func (r *RoomRepository) ListWithDetails(ctx context.Context) ([]dto.RoomWithDetails, error) {
	var out []dto.RoomWithDetails
	err := r.store.View(func(d *store.Data) error {
		for _, room := range d.Rooms {
			detail := dto.RoomWithDetails{
				Room:          cloneRoom(room),
				BuildingName:  notAvailable,
				OccupantNames: make([]string, 0, len(room.Occupants)),
			}
			if b := d.FindBuilding(room.BuildingID); b != nil {
				detail.BuildingName = b.Name
			}
			for _, occupantID := range room.Occupants {
				if s := d.FindStudent(occupantID); s != nil {
					detail.OccupantNames = append(detail.OccupantNames, s.Name)
				} else {
					detail.OccupantNames = append(detail.OccupantNames, notAvailable)
				}
			}
			out = append(out, detail)
		}
		return nil
	})
	return out, err
}
