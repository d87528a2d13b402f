package repository

import (
	"context"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/store"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// BuildingRepository reads the static building reference data.
type BuildingRepository struct {
	store *store.Store
}

// NewBuildingRepository constructs the repository.
func NewBuildingRepository(s *store.Store) *BuildingRepository {
	return &BuildingRepository{store: s}
}

// List returns all buildings.
func (r *BuildingRepository) List(ctx context.Context) ([]models.Building, error) {
	var out []models.Building
	err := r.store.View(func(d *store.Data) error {
		out = append([]models.Building(nil), d.Buildings...)
		return nil
	})
	return out, err
}

// FindByID returns a single building.
func (r *BuildingRepository) FindByID(ctx context.Context, id string) (*models.Building, error) {
	var out *models.Building
	err := r.store.View(func(d *store.Data) error {
		if b := d.FindBuilding(id); b != nil {
			copied := *b
			out = &copied
			return nil
		}
		return appErrors.Clone(appErrors.ErrNotFound, "building not found")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
