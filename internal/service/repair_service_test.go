package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

func newRepairService(t *testing.T) *RepairService {
	t.Helper()
	s := seededStore(t)
	return NewRepairService(repository.NewRepairRepository(s), repository.NewStudentRepository(s), nil, nil)
}

func TestRepairListScoping(t *testing.T) {
	svc := newRepairService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dormA, err := svc.List(ctx, managerClaims("dorm-a"))
	require.NoError(t, err)
	require.Len(t, dormA, 2)
	for _, rep := range dormA {
		assert.Equal(t, "dorm-a", rep.BuildingID)
	}

	own, err := svc.List(ctx, studentClaims("stu-5"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "rep-2", own[0].ID)
}

func TestRepairCreateStudentAlwaysFilesForSelf(t *testing.T) {
	svc := newRepairService(t)

	// The payload names another student; the session claim wins.
	repair, err := svc.Create(context.Background(), studentClaims("stu-1"), CreateRepairRequest{
		StudentID:   "stu-4",
		Description: "Door hinge squeaks",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-1", repair.StudentID)
	assert.Equal(t, "room-a-101", repair.RoomID)
	assert.Equal(t, "dorm-a", repair.BuildingID)
}

func TestRepairCreateStaffNamesStudent(t *testing.T) {
	svc := newRepairService(t)

	repair, err := svc.Create(context.Background(), adminClaims(), CreateRepairRequest{
		StudentID:   "stu-4",
		Description: "Ceiling light flickers",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-4", repair.StudentID)
	assert.Equal(t, "room-b-201", repair.RoomID)

	_, err = svc.Create(context.Background(), adminClaims(), CreateRepairRequest{Description: "No student named"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestRepairCreateRejectsUnassignedStudent(t *testing.T) {
	svc := newRepairService(t)

	_, err := svc.Create(context.Background(), studentClaims("stu-6"), CreateRepairRequest{
		Description: "Light broken",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestRepairUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newRepairService(t)

	_, err := svc.UpdateStatus(context.Background(), "rep-1", UpdateRepairStatusRequest{Status: "Cancelled"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	repair, err := svc.UpdateStatus(context.Background(), "rep-1", UpdateRepairStatusRequest{Status: models.RepairCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.RepairCompleted, repair.Status)
}
