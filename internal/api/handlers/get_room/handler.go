package get_room

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/labdelines/booking-calendar/internal/api/handlers"
)

const msgMissingRoomID = "room identifier is required"

// Handler HTTP хендлер получения конфигурации комнаты
type Handler struct {
	resolver RoomResolver
	logger   Logger
}

// NewHandler создает новый Handler
func NewHandler(resolver RoomResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle обрабатывает GET /api/v1/rooms/{roomId}.
// Неизвестная комната не является ошибкой: отдаются дефолтные метаданные
// с known=false, чтобы страница комнаты всегда могла отрисоваться.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	if roomID == "" {
		h.logger.Warn("Handle: missing roomId in path")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	cfg, known := h.resolver.Resolve(roomID)

	h.logger.Info("Handle: room %q resolved to %q (known=%t)", roomID, cfg.Key, known)
	handlers.RespondJSON(w, http.StatusOK, FromRoomConfig(cfg, known))
}
