package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/service"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/response"
)

// VisitorHandler exposes the visitor log endpoints.
type VisitorHandler struct {
	visitors *service.VisitorService
}

// NewVisitorHandler constructs VisitorHandler.
func NewVisitorHandler(visitors *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitors: visitors}
}

// List godoc
// @Summary List visitors visible to the caller
// @Tags Visitors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /visitors [get]
func (h *VisitorHandler) List(c *gin.Context) {
	visitors, err := h.visitors.List(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, visitors, nil)
}

// Register godoc
// @Summary Register a visitor
// @Description Students register visitors against themselves; staff pick the host student
// @Tags Visitors
// @Accept json
// @Produce json
// @Param payload body service.RegisterVisitorRequest true "Visitor payload"
// @Success 201 {object} response.Envelope
// @Router /visitors [post]
func (h *VisitorHandler) Register(c *gin.Context) {
	var req service.RegisterVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	visitor, err := h.visitors.Register(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, visitor)
}

// CheckOut godoc
// @Summary Check out an active visitor
// @Tags Visitors
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /visitors/{id}/checkout [post]
func (h *VisitorHandler) CheckOut(c *gin.Context) {
	visitor, err := h.visitors.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, visitor, nil)
}
