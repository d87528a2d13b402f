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

// HygieneRepository owns hygiene check records. Checks are immutable once
// recorded and never deleted.
type HygieneRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewHygieneRepository constructs the repository.
func NewHygieneRepository(s *store.Store) *HygieneRepository {
	return &HygieneRepository{store: s, now: time.Now}
}

// List returns all hygiene checks, newest first.
func (r *HygieneRepository) List(ctx context.Context) ([]models.HygieneCheck, error) {
	var out []models.HygieneCheck
	err := r.store.View(func(d *store.Data) error {
		out = append([]models.HygieneCheck(nil), d.HygieneChecks...)
		return nil
	})
	return out, err
}

// Insert records a check for a room, denormalizing the building reference
// from the room inside the mutation.
func (r *HygieneRepository) Insert(ctx context.Context, roomID string, score int, notes string) (*models.HygieneCheck, error) {
	check := models.HygieneCheck{
		ID:        fmt.Sprintf("hyg-%s", uuid.NewString()),
		RoomID:    roomID,
		Score:     score,
		Notes:     notes,
		CheckedAt: r.now().UTC(),
	}
	err := r.store.Update(func(d *store.Data) error {
		room := d.FindRoom(roomID)
		if room == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		check.BuildingID = room.BuildingID
		d.HygieneChecks = append([]models.HygieneCheck{check}, d.HygieneChecks...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &check, nil
}
