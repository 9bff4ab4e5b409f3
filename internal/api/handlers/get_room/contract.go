package get_room

import (
	"github.com/labdelines/booking-calendar/internal/domain"
)

// RoomResolver разрешает ключ или алиас комнаты в конфигурацию отображения
type RoomResolver interface {
	Resolve(keyOrAlias string) (domain.RoomConfig, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
