package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Unassigned(ctx context.Context) ([]models.Student, error)
	Insert(ctx context.Context, student models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, patch repository.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	AssignRoom(ctx context.Context, studentID, roomID string) (*models.Student, *models.Room, error)
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	StudentNumber string `json:"student_number" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female"`
	Class         string `json:"class" validate:"required"`
}

// UpdateStudentRequest holds a partial student update. Omitted fields are
// left unchanged; an explicit empty room id clears the assignment.
type UpdateStudentRequest struct {
	Name          *string `json:"name,omitempty"`
	StudentNumber *string `json:"student_number,omitempty"`
	Gender        *string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	Class         *string `json:"class,omitempty"`
	RoomID        *string `json:"room_id,omitempty"`
}

// AssignRoomRequest pairs a student with a room.
type AssignRoomRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	RoomID    string `json:"room_id" validate:"required"`
}

// AssignmentResult returns the post-assignment state of both records.
type AssignmentResult struct {
	Student models.Student `json:"student"`
	Room    models.Room    `json:"room"`
}

// StudentService handles student use-cases with role-scoped visibility.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns the students visible to the caller: administrators see all,
// dorm managers their building, students themselves.
func (s *StudentService) List(ctx context.Context, claims *models.SessionClaims) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	switch claims.Role {
	case models.RoleAdministrator:
		return students, nil
	case models.RoleDormManager:
		scoped := make([]models.Student, 0, len(students))
		for _, st := range students {
			if st.BuildingID == claims.BuildingID {
				scoped = append(scoped, st)
			}
		}
		return scoped, nil
	default:
		for _, st := range students {
			if st.ID == claims.StudentID {
				return []models.Student{st}, nil
			}
		}
		return []models.Student{}, nil
	}
}

// Unassigned returns every student without a room.
func (s *StudentService) Unassigned(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.Unassigned(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list unassigned students")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Create registers a new student without a room assignment.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.repo.Insert(ctx, models.Student{
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		Gender:        req.Gender,
		Class:         req.Class,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("student created", zap.String("student_id", student.ID))
	return student, nil
}

// Update applies a partial update, including room moves subject to capacity.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.repo.Update(ctx, id, repository.StudentPatch{
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		Gender:        req.Gender,
		Class:         req.Class,
		RoomID:        req.RoomID,
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student and frees their room place.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

// Assign places an unassigned student into a room.
func (s *StudentService) Assign(ctx context.Context, req AssignRoomRequest) (*AssignmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	student, room, err := s.repo.AssignRoom(ctx, req.StudentID, req.RoomID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("student assigned",
		zap.String("student_id", student.ID),
		zap.String("room_id", room.ID),
	)
	return &AssignmentResult{Student: *student, Room: *room}, nil
}
