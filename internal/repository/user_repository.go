package repository

import (
	"context"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/store"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// UserRepository reads the fixed login roster. Users are never created,
// mutated or destroyed by the application.
type UserRepository struct {
	store *store.Store
}

// NewUserRepository constructs the repository.
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// List returns the full roster for the login screen.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := r.store.View(func(d *store.Data) error {
		out = append([]models.User(nil), d.Users...)
		return nil
	})
	return out, err
}

// FindByID returns a roster entry.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var out *models.User
	err := r.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.ID == id {
				copied := u
				out = &copied
				return nil
			}
		}
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
