package get_room_calendar

import (
	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/service/bookings"
)

// RecordProvider интерфейс поставщика записей бронирований
type RecordProvider interface {
	// Records возвращает текущий снапшот нормализованных записей
	Records() bookings.Snapshot
}

// RoomResolver интерфейс резолвера конфигураций комнат
type RoomResolver interface {
	// Resolve возвращает конфигурацию комнаты по ключу или алиасу;
	// второй результат false для неизвестных ключей
	Resolve(keyOrAlias string) (domain.RoomConfig, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
