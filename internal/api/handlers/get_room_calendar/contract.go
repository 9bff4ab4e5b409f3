package get_room_calendar

import (
	"context"
	"time"

	getRoomCalendar "github.com/labdelines/booking-calendar/internal/usecase/get_room_calendar"
)

// GetRoomCalendarUseCase интерфейс use case построения календаря
type GetRoomCalendarUseCase interface {
	Execute(ctx context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error)
}

// Clock интерфейс текущего времени: месяц по умолчанию в запросе без
// параметров - текущий
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
