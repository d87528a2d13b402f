package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/export"

	"github.com/dormhub/dormhub-api/internal/models"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered document ready to stream to the client.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

type exportStudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
}

type exportRoomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
}

type exportBuildingRepository interface {
	List(ctx context.Context) ([]models.Building, error)
}

type exportHygieneRepository interface {
	List(ctx context.Context) ([]models.HygieneCheck, error)
}

type exportRepairRepository interface {
	List(ctx context.Context) ([]models.RepairRequest, error)
}

// ExportService renders administrative reports as CSV or PDF files.
type ExportService struct {
	students  exportStudentRepository
	rooms     exportRoomRepository
	buildings exportBuildingRepository
	hygiene   exportHygieneRepository
	repairs   exportRepairRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewExportService constructs the export service.
func NewExportService(
	students exportStudentRepository,
	rooms exportRoomRepository,
	buildings exportBuildingRepository,
	hygiene exportHygieneRepository,
	repairs exportRepairRepository,
) *ExportService {
	return &ExportService{
		students:  students,
		rooms:     rooms,
		buildings: buildings,
		hygiene:   hygiene,
		repairs:   repairs,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// ParseFormat validates the requested format, defaulting to CSV.
func ParseFormat(raw string) (ExportFormat, error) {
	switch raw {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatPDF):
		return FormatPDF, nil
	}
	return "", apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
}

// Students renders the full student roster with resolved room and building
// names.
func (s *ExportService) Students(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	roomNames, buildingNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"ID", "Name", "Student Number", "Gender", "Class", "Building", "Room"},
	}
	for _, st := range students {
		data.Rows = append(data.Rows, map[string]string{
			"ID":             st.ID,
			"Name":           st.Name,
			"Student Number": st.StudentNumber,
			"Gender":         st.Gender,
			"Class":          st.Class,
			"Building":       orPlaceholder(buildingNames[st.BuildingID]),
			"Room":           orPlaceholder(roomNames[st.RoomID]),
		})
	}
	return s.render(data, format, "students")
}

// Hygiene renders all hygiene check records.
func (s *ExportService) Hygiene(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	checks, err := s.hygiene.List(ctx)
	if err != nil {
		return nil, err
	}
	roomNames, buildingNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"ID", "Building", "Room", "Score", "Notes", "Checked At"},
	}
	for _, check := range checks {
		data.Rows = append(data.Rows, map[string]string{
			"ID":         check.ID,
			"Building":   orPlaceholder(buildingNames[check.BuildingID]),
			"Room":       orPlaceholder(roomNames[check.RoomID]),
			"Score":      strconv.Itoa(check.Score),
			"Notes":      check.Notes,
			"Checked At": check.CheckedAt.Format(time.RFC3339),
		})
	}
	return s.render(data, format, "hygiene-checks")
}

// Repairs renders all repair requests.
func (s *ExportService) Repairs(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	repairs, err := s.repairs.List(ctx)
	if err != nil {
		return nil, err
	}
	roomNames, buildingNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"ID", "Student ID", "Building", "Room", "Description", "Status", "Submitted At"},
	}
	for _, repair := range repairs {
		data.Rows = append(data.Rows, map[string]string{
			"ID":           repair.ID,
			"Student ID":   repair.StudentID,
			"Building":     orPlaceholder(buildingNames[repair.BuildingID]),
			"Room":         orPlaceholder(roomNames[repair.RoomID]),
			"Description":  repair.Description,
			"Status":       string(repair.Status),
			"Submitted At": repair.SubmittedAt.Format(time.RFC3339),
		})
	}
	return s.render(data, format, "repair-requests")
}

func (s *ExportService) lookupNames(ctx context.Context) (map[string]string, map[string]string, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	roomNames := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Number
	}
	buildingNames := make(map[string]string, len(buildings))
	for _, building := range buildings {
		buildingNames[building.ID] = building.Name
	}
	return roomNames, buildingNames, nil
}

func (s *ExportService) render(data export.Dataset, format ExportFormat, name string) (*ExportResult, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case FormatPDF:
		content, err := s.pdf.Render(data, name)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "render pdf export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-%s.pdf", name, stamp),
		}, nil
	default:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "render csv export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-%s.csv", name, stamp),
		}, nil
	}
}

func orPlaceholder(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
