package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type visitorRepository interface {
	List(ctx context.Context) ([]models.Visitor, error)
	Insert(ctx context.Context, name, idNumber, studentID string) (*models.Visitor, error)
	CheckOut(ctx context.Context, id string) (*models.Visitor, error)
}

type studentLister interface {
	List(ctx context.Context) ([]models.Student, error)
}

// RegisterVisitorRequest signs a guest in against a student.
type RegisterVisitorRequest struct {
	Name      string `json:"name" validate:"required"`
	IDNumber  string `json:"id_number" validate:"required"`
	StudentID string `json:"student_id,omitempty"`
}

// VisitorService handles the visitor log use-cases.
type VisitorService struct {
	repo      visitorRepository
	students  studentLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVisitorService constructs the visitor service.
func NewVisitorService(repo visitorRepository, students studentLister, validate *validator.Validate, logger *zap.Logger) *VisitorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitorService{repo: repo, students: students, validator: validate, logger: logger}
}

// List returns the visitors visible to the caller. Managers see the guests
// of every student housed in their building.
func (s *VisitorService) List(ctx context.Context, claims *models.SessionClaims) ([]models.Visitor, error) {
	visitors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list visitors")
	}

	switch claims.Role {
	case models.RoleAdministrator:
		return visitors, nil
	case models.RoleDormManager:
		students, err := s.students.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve building residents")
		}
		inBuilding := make(map[string]struct{})
		for _, st := range students {
			if st.BuildingID == claims.BuildingID {
				inBuilding[st.ID] = struct{}{}
			}
		}
		scoped := make([]models.Visitor, 0, len(visitors))
		for _, v := range visitors {
			if _, ok := inBuilding[v.StudentID]; ok {
				scoped = append(scoped, v)
			}
		}
		return scoped, nil
	default:
		scoped := make([]models.Visitor, 0)
		for _, v := range visitors {
			if v.StudentID == claims.StudentID {
				scoped = append(scoped, v)
			}
		}
		return scoped, nil
	}
}

// Register signs a visitor in. Students may only register guests for
// themselves; the claim overrides whatever the payload names.
func (s *VisitorService) Register(ctx context.Context, claims *models.SessionClaims, req RegisterVisitorRequest) (*models.Visitor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid visitor payload")
	}

	studentID := req.StudentID
	if claims.Role == models.RoleStudent {
		studentID = claims.StudentID
	}
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}

	visitor, err := s.repo.Insert(ctx, req.Name, req.IDNumber, studentID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("visitor registered",
		zap.String("visitor_id", visitor.ID),
		zap.String("student_id", visitor.StudentID),
	)
	return visitor, nil
}

// CheckOut stamps the visitor's departure time.
func (s *VisitorService) CheckOut(ctx context.Context, id string) (*models.Visitor, error) {
	visitor, err := s.repo.CheckOut(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("visitor checked out", zap.String("visitor_id", visitor.ID))
	return visitor, nil
}
