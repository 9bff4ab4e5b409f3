package get_room_calendar

import (
	"time"

	getRoomCalendar "github.com/labdelines/booking-calendar/internal/usecase/get_room_calendar"
)

// CalendarResponse HTTP модель календаря комнаты на месяц
type CalendarResponse struct {
	RoomID    string       `json:"roomId"`
	RoomKey   string       `json:"roomKey"`
	Room      RoomResponse `json:"room"`
	RoomKnown bool         `json:"roomKnown"`

	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`

	// Weeks полные недели месяца; пустые ячейки выравнивания - null,
	// как их ждет календарная сетка UI
	Weeks [][]*DayCell `json:"weeks"`

	Stats StatsResponse `json:"stats"`

	Prev MonthRef `json:"prev"`
	Next MonthRef `json:"next"`

	Source    string `json:"source"`
	FetchedAt string `json:"fetchedAt,omitempty"`
}

// RoomResponse метаданные комнаты для отображения
type RoomResponse struct {
	Key         string        `json:"key"`
	DisplayName string        `json:"displayName"`
	Description string        `json:"description"`
	Capacity    string        `json:"capacity,omitempty"`
	Color       string        `json:"color"`
	Pricing     PricingResponse `json:"pricing"`
}

// PricingResponse тарифы комнаты
type PricingResponse struct {
	HalfDay PriceTierResponse `json:"halfDay"`
	FullDay PriceTierResponse `json:"fullDay"`
}

// PriceTierResponse один тариф
type PriceTierResponse struct {
	Hours int    `json:"hours"`
	Price string `json:"price"`
}

// DayCell одна ячейка сетки
type DayCell struct {
	Day      int            `json:"day"`
	DateKey  string         `json:"dateKey"`
	Status   string         `json:"status"`
	Bookings []BookingCell  `json:"bookings"`
	Periods  PeriodsSummary `json:"periods"`
}

// BookingCell одно бронирование в ячейке
type BookingCell struct {
	Time        string `json:"time,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Period      string `json:"period"`
	Warning     bool   `json:"warning"`
}

// PeriodsSummary сводка периодов дня для выбора способа отрисовки ячейки
type PeriodsSummary struct {
	HasMorning          bool `json:"hasMorning"`
	HasAfternoon        bool `json:"hasAfternoon"`
	HasWarningMorning   bool `json:"hasWarningMorning"`
	HasWarningAfternoon bool `json:"hasWarningAfternoon"`
	IsFullDay           bool `json:"isFullDay"`
	HasAnyWarning       bool `json:"hasAnyWarning"`
}

// StatsResponse статистика месяца
type StatsResponse struct {
	TotalBookings    int `json:"totalBookings"`
	BookedDays       int `json:"bookedDays"`
	AvailableDays    int `json:"availableDays"`
	TotalDaysInMonth int `json:"totalDaysInMonth"`
}

// MonthRef ссылка на соседний месяц для навигации
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	weeks := make([][]*DayCell, 0, len(resp.Weeks))
	for _, week := range resp.Weeks {
		row := make([]*DayCell, 0, len(week))
		for i := range week {
			row = append(row, toDayCell(&week[i]))
		}
		weeks = append(weeks, row)
	}

	out := &CalendarResponse{
		RoomID:    resp.RoomID,
		RoomKey:   resp.RoomKey,
		Room:      toRoomResponse(resp),
		RoomKnown: resp.RoomKnown,
		Year:      resp.Year,
		Month:     int(resp.Month),
		MonthName: resp.Month.String(),
		Weeks:     weeks,
		Stats: StatsResponse{
			TotalBookings:    resp.Stats.TotalBookings,
			BookedDays:       resp.Stats.BookedDays,
			AvailableDays:    resp.Stats.AvailableDays,
			TotalDaysInMonth: resp.Stats.TotalDaysInMonth,
		},
		Prev:   MonthRef{Year: resp.Prev.Year, Month: int(resp.Prev.Month)},
		Next:   MonthRef{Year: resp.Next.Year, Month: int(resp.Next.Month)},
		Source: string(resp.Source),
	}
	if !resp.FetchedAt.IsZero() {
		out.FetchedAt = resp.FetchedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toRoomResponse(resp *getRoomCalendar.Response) RoomResponse {
	return RoomResponse{
		Key:         resp.Room.Key,
		DisplayName: resp.Room.DisplayName,
		Description: resp.Room.Description,
		Capacity:    resp.Room.Capacity,
		Color:       resp.Room.Color,
		Pricing: PricingResponse{
			HalfDay: PriceTierResponse{Hours: resp.Room.HalfDay.Hours, Price: resp.Room.HalfDay.Price},
			FullDay: PriceTierResponse{Hours: resp.Room.FullDay.Hours, Price: resp.Room.FullDay.Price},
		},
	}
}

// toDayCell конвертирует ячейку; пустые ячейки выравнивания становятся nil
func toDayCell(day *getRoomCalendar.Day) *DayCell {
	if day.IsBlank() {
		return nil
	}

	bookings := make([]BookingCell, 0, len(day.Bookings))
	for _, b := range day.Bookings {
		bookings = append(bookings, BookingCell{
			Time:        b.Time,
			Duration:    b.Duration,
			Status:      b.Status,
			StatusLabel: b.StatusLabel,
			Period:      string(b.Period),
			Warning:     b.Warning,
		})
	}

	return &DayCell{
		Day:      day.Day,
		DateKey:  day.DateKey,
		Status:   string(day.Status),
		Bookings: bookings,
		Periods: PeriodsSummary{
			HasMorning:          day.Periods.HasMorning,
			HasAfternoon:        day.Periods.HasAfternoon,
			HasWarningMorning:   day.Periods.HasWarningMorning,
			HasWarningAfternoon: day.Periods.HasWarningAfternoon,
			IsFullDay:           day.Periods.IsFullDay,
			HasAnyWarning:       day.Periods.HasAnyWarning,
		},
	}
}
