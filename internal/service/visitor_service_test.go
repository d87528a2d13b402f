package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

func newVisitorService(t *testing.T) *VisitorService {
	t.Helper()
	s := seededStore(t)
	return NewVisitorService(repository.NewVisitorRepository(s), repository.NewStudentRepository(s), nil, nil)
}

func TestVisitorListScoping(t *testing.T) {
	svc := newVisitorService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// vis-2 is hosted by stu-5 who lives in dorm-b.
	dormB, err := svc.List(ctx, managerClaims("dorm-b"))
	require.NoError(t, err)
	require.Len(t, dormB, 1)
	assert.Equal(t, "vis-2", dormB[0].ID)

	own, err := svc.List(ctx, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "vis-1", own[0].ID)

	none, err := svc.List(ctx, studentClaims("stu-6"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVisitorRegisterStudentForcedToSelf(t *testing.T) {
	svc := newVisitorService(t)

	visitor, err := svc.Register(context.Background(), studentClaims("stu-1"), RegisterVisitorRequest{
		Name:      "Cousin Carl",
		IDNumber:  "42",
		StudentID: "stu-5",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-1", visitor.StudentID)
	assert.True(t, visitor.Active())
}

func TestVisitorRegisterStaffMustNameHost(t *testing.T) {
	svc := newVisitorService(t)

	_, err := svc.Register(context.Background(), adminClaims(), RegisterVisitorRequest{
		Name:     "Walk In",
		IDNumber: "7",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	visitor, err := svc.Register(context.Background(), adminClaims(), RegisterVisitorRequest{
		Name:      "Walk In",
		IDNumber:  "7",
		StudentID: "stu-3",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-3", visitor.StudentID)
}

func TestVisitorCheckOutConflictOnSecondAttempt(t *testing.T) {
	svc := newVisitorService(t)

	visitor, err := svc.CheckOut(context.Background(), "vis-2")
	require.NoError(t, err)
	assert.False(t, visitor.Active())

	_, err = svc.CheckOut(context.Background(), "vis-2")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}
