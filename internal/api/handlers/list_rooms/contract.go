package list_rooms

import (
	"github.com/labdelines/booking-calendar/internal/domain"
)

// RoomLister возвращает все сконфигурированные комнаты
type RoomLister interface {
	List() []domain.RoomConfig
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
