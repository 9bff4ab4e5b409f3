package get_room_calendar

import (
	"fmt"
	"strings"
	"time"
)

// Границы поддерживаемых лет: формат ключа даты YYYY-MM-DD предполагает
// четырехзначный год
const (
	minYear = 1
	maxYear = 9999
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return ErrMissingRoom
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, int(req.Month))
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, req.Year)
	}

	return nil
}
