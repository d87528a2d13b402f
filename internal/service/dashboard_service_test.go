package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

// memoryCacheRepo is a map-backed CacheRepository for exercising the cached
// dashboard path without redis.
type memoryCacheRepo struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]byte)
	return nil
}

func newDashboardService(t *testing.T, cache *CacheService) *DashboardService {
	t.Helper()
	s := seededStore(t)
	students := repository.NewStudentRepository(s)
	rooms := repository.NewRoomRepository(s)
	buildings := repository.NewBuildingRepository(s)

	studentSvc := NewStudentService(students, nil, nil)
	repairSvc := NewRepairService(repository.NewRepairRepository(s), students, nil, nil)
	visitorSvc := NewVisitorService(repository.NewVisitorRepository(s), students, nil, nil)

	if cache == nil {
		cache = NewCacheService(nil, nil, time.Minute, nil, false)
	}
	return NewDashboardService(studentSvc, repairSvc, visitorSvc, rooms, buildings, students, cache, nil)
}

func TestDashboardAdminStats(t *testing.T) {
	svc := newDashboardService(t, nil)

	stats, cached, err := svc.Stats(context.Background(), adminClaims())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 6, stats.TotalStudents)
	assert.Equal(t, 1, stats.PendingRepairs)
	assert.Equal(t, 1, stats.ActiveVisitors)
	assert.Equal(t, 3, stats.RoomsOccupied)
	assert.Empty(t, stats.RoomInfo)
}

func TestDashboardManagerStatsScopedToBuilding(t *testing.T) {
	svc := newDashboardService(t, nil)

	stats, _, err := svc.Stats(context.Background(), managerClaims("dorm-a"))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.PendingRepairs)
	assert.Equal(t, 0, stats.ActiveVisitors, "the only active visitor is hosted in dorm-b")
	assert.Equal(t, 2, stats.RoomsOccupied)
}

func TestDashboardStudentStats(t *testing.T) {
	svc := newDashboardService(t, nil)

	stats, _, err := svc.Stats(context.Background(), studentClaims("stu-1"))
	require.NoError(t, err)
	assert.Equal(t, "Building A - 101", stats.RoomInfo)
	assert.Equal(t, 1, stats.PendingRepairs)
	assert.Zero(t, stats.TotalStudents)
	assert.Zero(t, stats.ActiveVisitors)
	assert.Zero(t, stats.RoomsOccupied)
}

func TestDashboardUnassignedStudentRoomInfoPlaceholder(t *testing.T) {
	svc := newDashboardService(t, nil)

	stats, _, err := svc.Stats(context.Background(), studentClaims("stu-6"))
	require.NoError(t, err)
	assert.Equal(t, "N/A", stats.RoomInfo)
	assert.Zero(t, stats.PendingRepairs)
}

func TestDashboardCacheRoundTripAndInvalidation(t *testing.T) {
	repo := newMemoryCacheRepo()
	cache := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	svc := newDashboardService(t, cache)
	ctx := context.Background()

	_, cached, err := svc.Stats(ctx, adminClaims())
	require.NoError(t, err)
	assert.False(t, cached)

	stats, cached, err := svc.Stats(ctx, adminClaims())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 6, stats.TotalStudents)

	// A different scope gets its own entry, never the admin payload.
	studentStats, cached, err := svc.Stats(ctx, studentClaims("stu-1"))
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "Building A - 101", studentStats.RoomInfo)

	svc.InvalidateCache(ctx)
	_, cached, err = svc.Stats(ctx, adminClaims())
	require.NoError(t, err)
	assert.False(t, cached)
}
