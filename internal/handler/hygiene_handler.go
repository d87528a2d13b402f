package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/service"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/response"
)

// HygieneHandler exposes hygiene check endpoints.
type HygieneHandler struct {
	hygiene *service.HygieneService
}

// NewHygieneHandler constructs HygieneHandler.
func NewHygieneHandler(hygiene *service.HygieneService) *HygieneHandler {
	return &HygieneHandler{hygiene: hygiene}
}

// List godoc
// @Summary List hygiene checks visible to the caller
// @Tags Hygiene
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /hygiene [get]
func (h *HygieneHandler) List(c *gin.Context) {
	checks, err := h.hygiene.List(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checks, nil)
}

// Create godoc
// @Summary Record a hygiene check
// @Tags Hygiene
// @Accept json
// @Produce json
// @Param payload body service.CreateHygieneCheckRequest true "Hygiene payload"
// @Success 201 {object} response.Envelope
// @Router /hygiene [post]
func (h *HygieneHandler) Create(c *gin.Context) {
	var req service.CreateHygieneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	check, err := h.hygiene.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, check)
}
