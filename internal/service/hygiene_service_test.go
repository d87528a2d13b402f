package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

func newHygieneService(t *testing.T) *HygieneService {
	t.Helper()
	s := seededStore(t)
	return NewHygieneService(repository.NewHygieneRepository(s), repository.NewStudentRepository(s), nil, nil)
}

func intPtr(v int) *int { return &v }

func TestHygieneListScoping(t *testing.T) {
	svc := newHygieneService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dormB, err := svc.List(ctx, managerClaims("dorm-b"))
	require.NoError(t, err)
	require.Len(t, dormB, 1)
	assert.Equal(t, "hyg-3", dormB[0].ID)

	ownRoom, err := svc.List(ctx, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Len(t, ownRoom, 1)
	assert.Equal(t, "room-a-101", ownRoom[0].RoomID)
}

func TestHygieneListUnassignedStudentSeesNothing(t *testing.T) {
	svc := newHygieneService(t)

	checks, err := svc.List(context.Background(), studentClaims("stu-6"))
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestHygieneCreateScoreBounds(t *testing.T) {
	svc := newHygieneService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateHygieneCheckRequest{RoomID: "room-a-101", Score: intPtr(101)})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Create(ctx, CreateHygieneCheckRequest{RoomID: "room-a-101", Score: intPtr(-1)})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Create(ctx, CreateHygieneCheckRequest{RoomID: "room-a-101"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation), "missing score must fail, zero is a valid value")

	check, err := svc.Create(ctx, CreateHygieneCheckRequest{RoomID: "room-a-101", Score: intPtr(0), Notes: "Needs attention"})
	require.NoError(t, err)
	assert.Equal(t, 0, check.Score)

	check, err = svc.Create(ctx, CreateHygieneCheckRequest{RoomID: "room-a-101", Score: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, 100, check.Score)
}

func TestHygieneCreateUnknownRoom(t *testing.T) {
	svc := newHygieneService(t)

	_, err := svc.Create(context.Background(), CreateHygieneCheckRequest{RoomID: "room-none", Score: intPtr(50)})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
