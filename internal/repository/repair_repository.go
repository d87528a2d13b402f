package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/store"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// RepairRepository owns repair request records. Requests are never deleted.
type RepairRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewRepairRepository constructs the repository.
func NewRepairRepository(s *store.Store) *RepairRepository {
	return &RepairRepository{store: s, now: time.Now}
}

// List returns all repair requests, newest first.
func (r *RepairRepository) List(ctx context.Context) ([]models.RepairRequest, error) {
	var out []models.RepairRequest
	err := r.store.View(func(d *store.Data) error {
		out = append([]models.RepairRequest(nil), d.Repairs...)
		return nil
	})
	return out, err
}

// Insert files a new request with status Pending. The building reference is
// denormalized from the room inside the mutation; callers never supply it.
func (r *RepairRepository) Insert(ctx context.Context, studentID, roomID, description string) (*models.RepairRequest, error) {
	repair := models.RepairRequest{
		ID:          fmt.Sprintf("rep-%s", uuid.NewString()),
		StudentID:   studentID,
		RoomID:      roomID,
		Description: description,
		Status:      models.RepairPending,
		SubmittedAt: r.now().UTC(),
	}
	err := r.store.Update(func(d *store.Data) error {
		room := d.FindRoom(roomID)
		if room == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		repair.BuildingID = room.BuildingID
		d.Repairs = append([]models.RepairRequest{repair}, d.Repairs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &repair, nil
}

// UpdateStatus moves the request to the given status. Any status is reachable
// from any other; there is no transition ordering.
func (r *RepairRepository) UpdateStatus(ctx context.Context, id string, status models.RepairStatus) (*models.RepairRequest, error) {
	var out models.RepairRequest
	err := r.store.Update(func(d *store.Data) error {
		for i := range d.Repairs {
			if d.Repairs[i].ID == id {
				d.Repairs[i].Status = status
				out = d.Repairs[i]
				return nil
			}
		}
		return appErrors.Clone(appErrors.ErrNotFound, "repair request not found")
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
