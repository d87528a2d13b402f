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

// VisitorRepository owns visitor log records. A visitor is mutated exactly
// once, by check-out.
type VisitorRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewVisitorRepository constructs the repository.
func NewVisitorRepository(s *store.Store) *VisitorRepository {
	return &VisitorRepository{store: s, now: time.Now}
}

// List returns all visitors, newest first.
func (r *VisitorRepository) List(ctx context.Context) ([]models.Visitor, error) {
	var out []models.Visitor
	err := r.store.View(func(d *store.Data) error {
		out = make([]models.Visitor, 0, len(d.Visitors))
		for _, v := range d.Visitors {
			out = append(out, cloneVisitor(v))
		}
		return nil
	})
	return out, err
}

// Insert registers a visitor with the check-in time set to now.
func (r *VisitorRepository) Insert(ctx context.Context, name, idNumber, studentID string) (*models.Visitor, error) {
	visitor := models.Visitor{
		ID:          fmt.Sprintf("vis-%s", uuid.NewString()),
		Name:        name,
		IDNumber:    idNumber,
		StudentID:   studentID,
		CheckInTime: r.now().UTC(),
	}
	err := r.store.Update(func(d *store.Data) error {
		if d.FindStudent(studentID) == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		d.Visitors = append([]models.Visitor{visitor}, d.Visitors...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// CheckOut stamps the check-out time. Checking out twice is a conflict; the
// original timestamp is preserved.
func (r *VisitorRepository) CheckOut(ctx context.Context, id string) (*models.Visitor, error) {
	var out models.Visitor
	err := r.store.Update(func(d *store.Data) error {
		for i := range d.Visitors {
			if d.Visitors[i].ID == id {
				if d.Visitors[i].CheckOutTime != nil {
					return appErrors.Clone(appErrors.ErrConflict, "visitor already checked out")
				}
				t := r.now().UTC()
				d.Visitors[i].CheckOutTime = &t
				out = cloneVisitor(d.Visitors[i])
				return nil
			}
		}
		return appErrors.Clone(appErrors.ErrNotFound, "visitor not found")
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
