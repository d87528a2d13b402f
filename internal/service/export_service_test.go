package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/repository"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

func newExportService(t *testing.T) *ExportService {
	t.Helper()
	s := seededStore(t)
	return NewExportService(
		repository.NewStudentRepository(s),
		repository.NewRoomRepository(s),
		repository.NewBuildingRepository(s),
		repository.NewHygieneRepository(s),
		repository.NewRepairRepository(s),
	)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)

	_, err = ParseFormat("xlsx")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestExportStudentsCSVResolvesNames(t *testing.T) {
	svc := newExportService(t)

	result, err := svc.Students(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "students-"))

	records, err := csv.NewReader(strings.NewReader(string(result.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7, "header plus six students")
	assert.Equal(t, []string{"ID", "Name", "Student Number", "Gender", "Class", "Building", "Room"}, records[0])

	var unassigned []string
	for _, row := range records[1:] {
		if row[0] == "stu-6" {
			unassigned = row
		}
		if row[0] == "stu-1" {
			assert.Equal(t, "Building A", row[5])
			assert.Equal(t, "101", row[6])
		}
	}
	require.NotNil(t, unassigned)
	assert.Equal(t, "N/A", unassigned[5])
	assert.Equal(t, "N/A", unassigned[6])
}

func TestExportRepairsCSV(t *testing.T) {
	svc := newExportService(t)

	result, err := svc.Repairs(context.Background(), FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(result.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Status", records[0][5])
}

func TestExportHygienePDF(t *testing.T) {
	svc := newExportService(t)

	result, err := svc.Hygiene(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"), "output must be a PDF document")
}
