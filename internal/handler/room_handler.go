package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormhub/dormhub-api/internal/service"
	"github.com/dormhub/dormhub-api/pkg/response"
)

// RoomHandler exposes room and building endpoints.
type RoomHandler struct {
	rooms *service.RoomService
}

// NewRoomHandler constructs RoomHandler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary List rooms with building and occupant names
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.ListWithDetails(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// Available godoc
// @Summary List rooms with at least one free bed
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	rooms, err := h.rooms.Available(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// Buildings godoc
// @Summary List dormitory buildings
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /buildings [get]
func (h *RoomHandler) Buildings(c *gin.Context) {
	buildings, err := h.rooms.Buildings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, buildings, nil)
}
