package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/service"
	"github.com/dormhub/dormhub-api/pkg/response"
)

type exportService interface {
	Students(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
	Hygiene(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
	Repairs(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler streams administrative report files.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Students godoc
// @Summary Export the student roster
// @Tags Exports
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/students [get]
func (h *ExportHandler) Students(c *gin.Context) {
	h.serve(c, h.service.Students)
}

// Hygiene godoc
// @Summary Export hygiene check records
// @Tags Exports
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/hygiene [get]
func (h *ExportHandler) Hygiene(c *gin.Context) {
	h.serve(c, h.service.Hygiene)
}

// Repairs godoc
// @Summary Export repair requests
// @Tags Exports
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/repairs [get]
func (h *ExportHandler) Repairs(c *gin.Context) {
	h.serve(c, h.service.Repairs)
}

func (h *ExportHandler) serve(c *gin.Context, render func(context.Context, service.ExportFormat) (*service.ExportResult, error)) {
	format, err := service.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := render(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Content)
}
