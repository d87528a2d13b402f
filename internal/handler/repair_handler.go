package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/service"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/response"
)

// RepairHandler exposes repair request endpoints.
type RepairHandler struct {
	repairs *service.RepairService
}

// NewRepairHandler constructs RepairHandler.
func NewRepairHandler(repairs *service.RepairService) *RepairHandler {
	return &RepairHandler{repairs: repairs}
}

// List godoc
// @Summary List repair requests visible to the caller
// @Tags Repairs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /repairs [get]
func (h *RepairHandler) List(c *gin.Context) {
	repairs, err := h.repairs.List(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, repairs, nil)
}

// Create godoc
// @Summary File a repair request
// @Description Students file for their own room; staff may file on behalf of a student
// @Tags Repairs
// @Accept json
// @Produce json
// @Param payload body service.CreateRepairRequest true "Repair payload"
// @Success 201 {object} response.Envelope
// @Router /repairs [post]
func (h *RepairHandler) Create(c *gin.Context) {
	var req service.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	repair, err := h.repairs.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, repair)
}

// UpdateStatus godoc
// @Summary Update repair request status
// @Tags Repairs
// @Accept json
// @Produce json
// @Param id path string true "Repair ID"
// @Param payload body service.UpdateRepairStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /repairs/{id}/status [patch]
func (h *RepairHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	repair, err := h.repairs.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, repair, nil)
}
