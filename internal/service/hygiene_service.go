package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type hygieneRepository interface {
	List(ctx context.Context) ([]models.HygieneCheck, error)
	Insert(ctx context.Context, roomID string, score int, notes string) (*models.HygieneCheck, error)
}

// CreateHygieneCheckRequest records an inspection. The score range is
// enforced here; the store accepts whatever the access layer admits.
type CreateHygieneCheckRequest struct {
	RoomID string `json:"room_id" validate:"required"`
	Score  *int   `json:"score" validate:"required,gte=0,lte=100"`
	Notes  string `json:"notes"`
}

// HygieneService handles hygiene check use-cases.
type HygieneService struct {
	repo      hygieneRepository
	students  studentFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHygieneService constructs the hygiene service.
func NewHygieneService(repo hygieneRepository, students studentFinder, validate *validator.Validate, logger *zap.Logger) *HygieneService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HygieneService{repo: repo, students: students, validator: validate, logger: logger}
}

// List returns the checks visible to the caller. Students see the checks for
// their own room; a student without a room sees nothing.
func (s *HygieneService) List(ctx context.Context, claims *models.SessionClaims) ([]models.HygieneCheck, error) {
	checks, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list hygiene checks")
	}

	switch claims.Role {
	case models.RoleAdministrator:
		return checks, nil
	case models.RoleDormManager:
		scoped := make([]models.HygieneCheck, 0, len(checks))
		for _, c := range checks {
			if c.BuildingID == claims.BuildingID {
				scoped = append(scoped, c)
			}
		}
		return scoped, nil
	default:
		scoped := make([]models.HygieneCheck, 0)
		student, err := s.students.FindByID(ctx, claims.StudentID)
		if err != nil || !student.Assigned() {
			return scoped, nil
		}
		for _, c := range checks {
			if c.RoomID == student.RoomID {
				scoped = append(scoped, c)
			}
		}
		return scoped, nil
	}
}

// Create records a new check.
func (s *HygieneService) Create(ctx context.Context, req CreateHygieneCheckRequest) (*models.HygieneCheck, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hygiene check payload")
	}
	check, err := s.repo.Insert(ctx, req.RoomID, *req.Score, req.Notes)
	if err != nil {
		return nil, err
	}
	s.logger.Info("hygiene check recorded",
		zap.String("check_id", check.ID),
		zap.String("room_id", check.RoomID),
		zap.Int("score", check.Score),
	)
	return check, nil
}
