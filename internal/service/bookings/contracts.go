package bookings

import (
	"context"

	"github.com/labdelines/booking-calendar/internal/infra/source"
)

// SourceClient интерфейс клиента внешнего источника бронирований
type SourceClient interface {
	Fetch(ctx context.Context) ([]source.RawRecord, error)
}

// Metrics интерфейс метрик загрузки источника
type Metrics interface {
	IncSourceFetch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
