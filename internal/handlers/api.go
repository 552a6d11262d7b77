package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/domain"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	rooms domain.RoomRepository
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(rooms domain.RoomRepository) *APIHandler {
	return &APIHandler{rooms: rooms}
}

// RoomsGet returns every room as JSON with all model fields, including
// the embedded host, topic and participants.
func (h *APIHandler) RoomsGet(c echo.Context) error {
	rooms, err := h.rooms.Search(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}
