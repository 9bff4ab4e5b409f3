package get_room_calendar

import (
	"time"

	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/service/bookings"
)

// Request модель запроса календаря комнаты на месяц
type Request struct {
	RoomID string     // ключ или алиас комнаты из URL
	Year   int
	Month  time.Month // 1-12
}

// Booking одна запись бронирования в ответе
type Booking struct {
	Room        string
	Date        string
	Time        string
	Duration    string
	Status      string        // сырой статус источника
	StatusLabel string        // подпись для отображения
	Period      domain.Period // morning | afternoon | full-day
	Warning     bool          // бронирование "в процессе"
}

// Day одна ячейка сетки. Пустые ячейки выравнивания имеют Day == 0
type Day struct {
	Day      int
	DateKey  string
	Status   domain.DayStatus
	Bookings []Booking
	Periods  domain.PeriodSummary
}

// IsBlank возвращает true для ячеек выравнивания недели
func (d *Day) IsBlank() bool {
	return d.Day == 0
}

// Response модель ответа: сетка месяца с метаданными комнаты,
// статистикой и навигацией
type Response struct {
	RoomID    string
	RoomKey   string
	Room      domain.RoomConfig
	RoomKnown bool

	Year  int
	Month time.Month

	Days  []Day   // полная выровненная сетка, длина кратна семи
	Weeks [][]Day // та же сетка, сгруппированная по неделям

	Stats domain.MonthStats

	Prev domain.YearMonth
	Next domain.YearMonth

	// Source и FetchedAt позволяют UI показать баннер
	// "показаны примерные данные" при недоступном источнике
	Source    bookings.Source
	FetchedAt time.Time
}

// toDay конвертирует доменную ячейку в модель ответа, подставляя
// подписи статусов и период каждого бронирования
func toDay(cell domain.DayCell, rules domain.StatusRules) Day {
	day := Day{
		Day:     cell.Day,
		DateKey: cell.DateKey,
		Status:  cell.Status,
		Periods: cell.Periods,
	}
	if len(cell.Bookings) > 0 {
		day.Bookings = make([]Booking, 0, len(cell.Bookings))
		for _, b := range cell.Bookings {
			day.Bookings = append(day.Bookings, Booking{
				Room:        b.Room,
				Date:        b.Date,
				Time:        b.Time,
				Duration:    b.Duration,
				Status:      b.Status,
				StatusLabel: rules.DisplayLabel(b.Status),
				Period:      domain.ClassifyTimeRange(b.Time),
				Warning:     rules.IsWarning(b.Status),
			})
		}
	}
	return day
}
