package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/service"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
	"github.com/dormhub/dormhub-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Roster godoc
// @Summary List selectable users
// @Description Returns the seeded accounts available on the login screen
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/users [get]
func (h *AuthHandler) Roster(c *gin.Context) {
	users, err := h.service.Roster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// Login godoc
// @Summary Start a session as a seeded user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}
