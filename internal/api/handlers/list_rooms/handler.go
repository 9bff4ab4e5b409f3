package list_rooms

import (
	"net/http"

	"github.com/labdelines/booking-calendar/internal/api/handlers"
)

// Handler HTTP хендлер списка комнат
type Handler struct {
	rooms  RoomLister
	logger Logger
}

// NewHandler создает новый Handler
func NewHandler(rooms RoomLister, logger Logger) *Handler {
	return &Handler{
		rooms:  rooms,
		logger: logger,
	}
}

// Handle обрабатывает GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := h.rooms.List()

	h.logger.Info("Handle: listed %d rooms", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromRoomConfigs(rooms))
}
