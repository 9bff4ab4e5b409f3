package get_room_calendar

import (
	"strings"
	"time"

	"github.com/labdelines/booking-calendar/internal/domain"
)

// generateGrid строит выровненную помесячную сетку ячеек.
//
// Сетка начинается с воскресенья: перед первым числом вставляются пустые
// ячейки по индексу дня недели первого числа, после последнего - пустые
// ячейки до полной недели, поэтому длина всегда кратна семи.
//
// В ячейку дня попадают только записи с точным совпадением даты и
// канонического ключа комнаты (не подстрока: "think tank 4th floor"
// никогда не совпадает с "think tank") и прошедшие фильтр видимости.
//
// Статус ячейки: warning, если среди видимых бронирований дня есть хотя бы
// одно "в процессе"; иначе booked при непустом списке; иначе available.
func generateGrid(year int, month time.Month, records []domain.BookingRecord, roomKey string, rules domain.StatusRules) []domain.DayCell {
	roomKey = strings.ToLower(roomKey)
	firstWeekday := domain.FirstWeekdayIndex(year, month)
	daysInMonth := domain.DaysInMonth(year, month)

	grid := make([]domain.DayCell, 0, firstWeekday+daysInMonth+6)

	for i := 0; i < firstWeekday; i++ {
		grid = append(grid, domain.DayCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		dateKey := domain.DateKey(year, month, day)

		cell := domain.DayCell{
			Day:     day,
			DateKey: dateKey,
			Status:  domain.DayAvailable,
		}

		for _, rec := range records {
			if !rec.IsOnDate(dateKey) || !rec.IsForRoom(roomKey) {
				continue
			}
			if !rules.DisplayEligible(rec.Status) {
				continue
			}
			cell.Bookings = append(cell.Bookings, rec)
		}

		if len(cell.Bookings) > 0 {
			cell.Status = domain.DayBooked
			for _, b := range cell.Bookings {
				if rules.IsWarning(b.Status) {
					cell.Status = domain.DayWarning
					break
				}
			}
		}

		cell.Periods = domain.AnalyzePeriods(cell.Bookings, rules)
		grid = append(grid, cell)
	}

	if rem := len(grid) % 7; rem != 0 {
		for i := 0; i < 7-rem; i++ {
			grid = append(grid, domain.DayCell{})
		}
	}

	return grid
}

// computeStats считает статистику месяца по готовой сетке.
//
// TotalBookings считается по переданному набору записей без учета комнаты:
// для статистики одной комнаты вызывающая сторона передает уже
// отфильтрованный набор.
func computeStats(grid []domain.DayCell, records []domain.BookingRecord, year int, month time.Month, rules domain.StatusRules) domain.MonthStats {
	monthPrefix := domain.MonthKeyPrefix(year, month)

	totalBookings := 0
	for _, rec := range records {
		if strings.HasPrefix(rec.Date, monthPrefix) && rules.DisplayEligible(rec.Status) {
			totalBookings++
		}
	}

	bookedDays := 0
	for i := range grid {
		if !grid[i].IsBlank() && grid[i].Status != domain.DayAvailable {
			bookedDays++
		}
	}

	totalDays := domain.DaysInMonth(year, month)

	return domain.MonthStats{
		TotalBookings:    totalBookings,
		BookedDays:       bookedDays,
		AvailableDays:    totalDays - bookedDays,
		TotalDaysInMonth: totalDays,
	}
}

// filterByRoom возвращает записи с точным совпадением канонического ключа
// комнаты
func filterByRoom(records []domain.BookingRecord, roomKey string) []domain.BookingRecord {
	out := make([]domain.BookingRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsForRoom(roomKey) {
			out = append(out, rec)
		}
	}
	return out
}
