package bookings

import (
	"strings"

	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/infra/source"
)

// Normalize валидирует и чистит сырые записи источника.
//
// Записи без даты, с датой-заглушкой экспорта таблицы или с датой не в
// формате YYYY-MM-DD молча отбрасываются - одна кривая строка таблицы не
// должна ломать календарь. Имя комнаты приводится к нижнему регистру,
// отсутствующие поля становятся пустыми строками.
func Normalize(raw []source.RawRecord) []domain.BookingRecord {
	records := make([]domain.BookingRecord, 0, len(raw))

	for _, r := range raw {
		if r.Date == "" || r.Date == domain.SentinelInvalidDate {
			continue
		}
		if !domain.DateKeyPattern.MatchString(r.Date) {
			continue
		}

		records = append(records, domain.BookingRecord{
			Room:     strings.ToLower(r.Room),
			Date:     r.Date,
			Time:     r.Time,
			Status:   r.Status,
			Duration: r.Duration,
		})
	}

	return records
}
