package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/response"
)

type summaryService interface {
	Generate(ctx context.Context, claims *models.SessionClaims, language string) (string, error)
}

// SummaryHandler exposes the AI briefing endpoint.
type SummaryHandler struct {
	service summaryService
}

// NewSummaryHandler constructs the handler.
func NewSummaryHandler(service summaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

type summaryRequest struct {
	Language string `json:"language"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Generate godoc
// @Summary Generate an AI briefing over the caller's visible data
// @Tags Summary
// @Accept json
// @Produce json
// @Param payload body summaryRequest false "Language selection (en or zh)"
// @Success 200 {object} response.Envelope
// @Router /summary [post]
func (h *SummaryHandler) Generate(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req summaryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}

	summary, err := h.service.Generate(c.Request.Context(), claims, req.Language)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaryResponse{Summary: summary}, nil)
}
