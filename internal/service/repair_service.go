package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type repairRepository interface {
	List(ctx context.Context) ([]models.RepairRequest, error)
	Insert(ctx context.Context, studentID, roomID, description string) (*models.RepairRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.RepairStatus) (*models.RepairRequest, error)
}

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// CreateRepairRequest holds payload for filing a repair. Students file for
// their own room; staff name the student being helped.
type CreateRepairRequest struct {
	StudentID   string `json:"student_id,omitempty"`
	Description string `json:"description" validate:"required"`
}

// UpdateRepairStatusRequest moves a request to a new status.
type UpdateRepairStatusRequest struct {
	Status models.RepairStatus `json:"status" validate:"required"`
}

// RepairService handles repair request use-cases.
type RepairService struct {
	repo      repairRepository
	students  studentFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRepairService constructs the repair service.
func NewRepairService(repo repairRepository, students studentFinder, validate *validator.Validate, logger *zap.Logger) *RepairService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepairService{repo: repo, students: students, validator: validate, logger: logger}
}

// List returns the repair requests visible to the caller.
func (s *RepairService) List(ctx context.Context, claims *models.SessionClaims) ([]models.RepairRequest, error) {
	repairs, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list repairs")
	}

	switch claims.Role {
	case models.RoleAdministrator:
		return repairs, nil
	case models.RoleDormManager:
		scoped := make([]models.RepairRequest, 0, len(repairs))
		for _, rep := range repairs {
			if rep.BuildingID == claims.BuildingID {
				scoped = append(scoped, rep)
			}
		}
		return scoped, nil
	default:
		scoped := make([]models.RepairRequest, 0)
		for _, rep := range repairs {
			if rep.StudentID == claims.StudentID {
				scoped = append(scoped, rep)
			}
		}
		return scoped, nil
	}
}

// Create files a repair for the reporting student's assigned room. The room
// and building references are resolved server-side, never caller-supplied.
func (s *RepairService) Create(ctx context.Context, claims *models.SessionClaims, req CreateRepairRequest) (*models.RepairRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid repair payload")
	}

	studentID := req.StudentID
	if claims.Role == models.RoleStudent {
		studentID = claims.StudentID
	}
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.Assigned() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student has no assigned room")
	}

	repair, err := s.repo.Insert(ctx, student.ID, student.RoomID, req.Description)
	if err != nil {
		return nil, err
	}
	s.logger.Info("repair filed",
		zap.String("repair_id", repair.ID),
		zap.String("room_id", repair.RoomID),
	)
	return repair, nil
}

// UpdateStatus moves a request to the given status. Any status is reachable
// from any other.
func (s *RepairService) UpdateStatus(ctx context.Context, id string, req UpdateRepairStatusRequest) (*models.RepairRequest, error) {
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown repair status")
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}
