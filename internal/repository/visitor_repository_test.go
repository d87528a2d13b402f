package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

func TestVisitorCheckOutStampsDeparture(t *testing.T) {
	repo := NewVisitorRepository(seededStore(t))
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	visitor, err := repo.CheckOut(context.Background(), "vis-2")
	require.NoError(t, err)
	require.NotNil(t, visitor.CheckOutTime)
	assert.Equal(t, fixed, *visitor.CheckOutTime)
	assert.False(t, visitor.Active())
}

func TestVisitorDoubleCheckOutConflicts(t *testing.T) {
	repo := NewVisitorRepository(seededStore(t))

	first, err := repo.CheckOut(context.Background(), "vis-2")
	require.NoError(t, err)

	_, err = repo.CheckOut(context.Background(), "vis-2")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))

	// The original departure stamp survives the rejected second attempt.
	visitors, err := repo.List(context.Background())
	require.NoError(t, err)
	for _, v := range visitors {
		if v.ID == "vis-2" {
			require.NotNil(t, v.CheckOutTime)
			assert.Equal(t, *first.CheckOutTime, *v.CheckOutTime)
		}
	}
}

func TestVisitorCheckOutSeededCheckedOutRecord(t *testing.T) {
	repo := NewVisitorRepository(seededStore(t))

	_, err := repo.CheckOut(context.Background(), "vis-1")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestVisitorInsertRequiresKnownStudent(t *testing.T) {
	repo := NewVisitorRepository(seededStore(t))

	_, err := repo.Insert(context.Background(), "Mallory", "555", "stu-none")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	visitor, err := repo.Insert(context.Background(), "Trent", "777", "stu-6")
	require.NoError(t, err)
	assert.True(t, visitor.Active())

	visitors, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, visitors, 3)
	assert.Equal(t, visitor.ID, visitors[0].ID, "new visitors are listed first")
}
