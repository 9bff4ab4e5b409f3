package domain

import (
	"fmt"
	"time"
)

// DayCell is one cell of a month grid. Padding cells before the first and
// after the last day of the month are "blank": Day is 0 and DateKey is
// empty.
type DayCell struct {
	Day      int    // 1..31, 0 for blank padding cells
	DateKey  string // canonical YYYY-MM-DD, empty for blank cells
	Status   DayStatus
	Bookings []BookingRecord // eligible bookings on this day and room, source order
	Periods  PeriodSummary
}

// IsBlank returns true for padding cells.
func (c *DayCell) IsBlank() bool {
	return c.Day == 0
}

// MonthStats summarizes one generated month grid.
type MonthStats struct {
	TotalBookings    int // eligible bookings in the month, over the record set given
	BookedDays       int // non-blank cells with status != available
	AvailableDays    int // TotalDaysInMonth - BookedDays
	TotalDaysInMonth int
}

// YearMonth is a (year, month) pair used for month navigation.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Next returns the following month, wrapping December into January.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Prev returns the preceding month, wrapping January into December.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// DaysInMonth returns the number of days in a month, using day-zero
// normalization of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayIndex returns the weekday of the 1st of the month,
// 0 = Sunday.
func FirstWeekdayIndex(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateKey formats a day as its canonical YYYY-MM-DD key.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthKeyPrefix returns the "YYYY-MM-" prefix shared by all date keys of a
// month.
func MonthKeyPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d-", year, int(month))
}

// GroupIntoWeeks chunks a padded grid into rows of exactly seven cells,
// preserving order. The grid length is always a multiple of seven.
func GroupIntoWeeks(grid []DayCell) [][]DayCell {
	weeks := make([][]DayCell, 0, len(grid)/7)
	for i := 0; i+7 <= len(grid); i += 7 {
		weeks = append(weeks, grid[i:i+7])
	}
	return weeks
}
