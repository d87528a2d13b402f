package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/dto"
	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type scopedStudentLister interface {
	List(ctx context.Context, claims *models.SessionClaims) ([]models.Student, error)
}

type scopedRepairLister interface {
	List(ctx context.Context, claims *models.SessionClaims) ([]models.RepairRequest, error)
}

type scopedVisitorLister interface {
	List(ctx context.Context, claims *models.SessionClaims) ([]models.Visitor, error)
}

type dashboardRoomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
}

type dashboardBuildingRepository interface {
	FindByID(ctx context.Context, id string) (*models.Building, error)
}

const dashboardCachePrefix = "dashboard"

// DashboardService aggregates the role-scoped counters shown on the landing
// screen. Each payload is computed from the caller's visible slice of the
// store, so the counters can never leak across role scopes; the cache key
// embeds the same scope for the same reason.
type DashboardService struct {
	students  scopedStudentLister
	repairs   scopedRepairLister
	visitors  scopedVisitorLister
	rooms     dashboardRoomRepository
	buildings dashboardBuildingRepository
	finder    studentFinder
	cache     *CacheService
	logger    *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(
	students scopedStudentLister,
	repairs scopedRepairLister,
	visitors scopedVisitorLister,
	rooms dashboardRoomRepository,
	buildings dashboardBuildingRepository,
	finder studentFinder,
	cache *CacheService,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		students:  students,
		repairs:   repairs,
		visitors:  visitors,
		rooms:     rooms,
		buildings: buildings,
		finder:    finder,
		cache:     cache,
		logger:    logger,
	}
}

// Stats returns the dashboard payload for the caller. The boolean reports
// whether the payload was served from cache.
func (s *DashboardService) Stats(ctx context.Context, claims *models.SessionClaims) (*dto.DashboardStats, bool, error) {
	key := s.cacheKey(claims)

	var cached dto.DashboardStats
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	var (
		stats *dto.DashboardStats
		err   error
	)
	if claims.Role == models.RoleStudent {
		stats, err = s.studentStats(ctx, claims)
	} else {
		stats, err = s.staffStats(ctx, claims)
	}
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Set(ctx, key, stats, 0); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return stats, false, nil
}

// InvalidateCache drops every cached dashboard payload. Called after any
// successful mutation.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCachePrefix+":*"); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *DashboardService) cacheKey(claims *models.SessionClaims) string {
	scope := "all"
	switch claims.Role {
	case models.RoleDormManager:
		scope = claims.BuildingID
	case models.RoleStudent:
		scope = claims.StudentID
	}
	return fmt.Sprintf("%s:%s:%s", dashboardCachePrefix, claims.Role, scope)
}

func (s *DashboardService) studentStats(ctx context.Context, claims *models.SessionClaims) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{RoomInfo: "N/A"}

	repairs, err := s.repairs.List(ctx, claims)
	if err != nil {
		return nil, err
	}
	for _, rep := range repairs {
		if rep.Status == models.RepairPending {
			stats.PendingRepairs++
		}
	}

	student, err := s.finder.FindByID(ctx, claims.StudentID)
	if err != nil || !student.Assigned() {
		return stats, nil
	}
	room, err := s.rooms.FindByID(ctx, student.RoomID)
	if err != nil {
		return stats, nil
	}
	buildingName := "N/A"
	if b, err := s.buildings.FindByID(ctx, room.BuildingID); err == nil {
		buildingName = b.Name
	}
	stats.RoomInfo = fmt.Sprintf("%s - %s", buildingName, room.Number)
	return stats, nil
}

func (s *DashboardService) staffStats(ctx context.Context, claims *models.SessionClaims) (*dto.DashboardStats, error) {
	students, err := s.students.List(ctx, claims)
	if err != nil {
		return nil, err
	}
	repairs, err := s.repairs.List(ctx, claims)
	if err != nil {
		return nil, err
	}
	visitors, err := s.visitors.List(ctx, claims)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}

	stats := &dto.DashboardStats{TotalStudents: len(students)}
	for _, rep := range repairs {
		if rep.Status == models.RepairPending {
			stats.PendingRepairs++
		}
	}
	for _, v := range visitors {
		if v.Active() {
			stats.ActiveVisitors++
		}
	}
	for _, room := range rooms {
		if len(room.Occupants) == 0 {
			continue
		}
		if claims.Role == models.RoleAdministrator || room.BuildingID == claims.BuildingID {
			stats.RoomsOccupied++
		}
	}
	return stats, nil
}
