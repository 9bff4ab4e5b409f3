package get_room_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/labdelines/booking-calendar/internal/api/handlers"
	getRoomCalendar "github.com/labdelines/booking-calendar/internal/usecase/get_room_calendar"
)

const (
	msgMissingRoomID = "room identifier is required"
	msgInvalidYear   = "invalid year, expected a four-digit number"
	msgInvalidMonth  = "invalid month, expected a number between 1 and 12"
)

// realClock системные часы для production
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Handler struct {
	useCase GetRoomCalendarUseCase
	clock   Clock
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   realClock{},
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar
// Query params: year (optional), month (optional, 1-12).
// Отсутствующие year/month берутся из текущей даты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID := vars["roomId"]
	if roomID == "" {
		h.logger.Warn("GET /rooms/{roomId}/calendar - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	now := h.clock.Now()

	year := now.Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		v, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomId}/calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = v
	}

	month := now.Month()
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		v, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomId}/calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = time.Month(v)
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomCalendar.Request{
		RoomID: roomID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /rooms/{roomId}/calendar - Invalid month: room=%s, month=%d", roomID, int(month))
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getRoomCalendar.ErrInvalidYear):
			h.logger.Warn("GET /rooms/{roomId}/calendar - Invalid year: room=%s, year=%d", roomID, year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getRoomCalendar.ErrMissingRoom):
			h.logger.Warn("GET /rooms/{roomId}/calendar - Missing room ID")
			handlers.RespondBadRequest(w, msgMissingRoomID)

		default:
			h.logger.Error("GET /rooms/{roomId}/calendar - Failed to build calendar: room=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/{roomId}/calendar - Calendar built: room=%s, year=%d, month=%d, booked_days=%d",
		roomID, year, int(month), result.Stats.BookedDays)
	handlers.RespondJSON(w, http.StatusOK, response)
}
