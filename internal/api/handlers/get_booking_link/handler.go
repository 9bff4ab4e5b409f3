package get_booking_link

import (
	"net/http"

	"github.com/labdelines/booking-calendar/internal/api/handlers"
	"github.com/labdelines/booking-calendar/internal/config"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Handler HTTP хендлер контакта для бронирования
type Handler struct {
	company config.CompanyConfig
	logger  Logger
}

// NewHandler создает новый Handler
func NewHandler(company config.CompanyConfig, logger Logger) *Handler {
	return &Handler{
		company: company,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/booking-link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromCompanyConfig(h.company))
}
