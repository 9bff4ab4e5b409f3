package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Period is the coarse part of the day covered by a booking's time range
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodFullDay   Period = "full-day"
)

// timeTokenPattern matches one hour-like token: hour, optional minutes,
// optional am/pm marker. Covers "09:00", "9:00 AM", "14", "5pm".
var timeTokenPattern = regexp.MustCompile(`(\d{1,2}):?(\d{0,2})\s*(am|pm)?`)

// ClassifyTimeRange parses a free-text time range ("09:00-17:00",
// "9:00 AM - 5:00 PM", ...) into a coarse period.
//
// A range whose start is before noon and whose end is after noon is a
// full-day booking. A range entirely before noon is a morning booking,
// otherwise an afternoon one. A single time token is classified by its
// hour alone. Empty or unparseable text fails open to full-day so that
// rendering is never blocked by a malformed cell.
func ClassifyTimeRange(timeText string) Period {
	s := strings.ToLower(strings.TrimSpace(timeText))
	if s == "" {
		return PeriodFullDay
	}

	tokens := timeTokenPattern.FindAllStringSubmatch(s, 2)
	if len(tokens) == 0 {
		return PeriodFullDay
	}

	start, ok := hourFromToken(tokens[0])
	if !ok {
		return PeriodFullDay
	}

	// Without a "-" separator there is no range, only a start time.
	if len(tokens) < 2 || !strings.Contains(s, "-") {
		if start < 12 {
			return PeriodMorning
		}
		return PeriodAfternoon
	}

	end, ok := hourFromToken(tokens[1])
	if !ok {
		if start < 12 {
			return PeriodMorning
		}
		return PeriodAfternoon
	}

	switch {
	case start < 12 && end > 12:
		return PeriodFullDay
	case start < 12:
		return PeriodMorning
	default:
		return PeriodAfternoon
	}
}

// hourFromToken converts one regex token to a 24-hour value.
// "pm" adds 12 except at noon; "12 am" is midnight.
func hourFromToken(token []string) (int, bool) {
	hour, err := strconv.Atoi(token[1])
	if err != nil {
		return 0, false
	}
	switch token[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 24 {
		return 0, false
	}
	return hour, true
}

// startHour extracts the first hour token of a time text.
func startHour(timeText string) (int, bool) {
	token := timeTokenPattern.FindStringSubmatch(strings.ToLower(timeText))
	if token == nil {
		return 0, false
	}
	return hourFromToken(token)
}

// PeriodSummary aggregates the periods covered by one day's bookings.
// The UI uses it to pick a solid, half-split or diagonal rendering for the
// day cell when several bookings share a date.
type PeriodSummary struct {
	HasMorning          bool
	HasAfternoon        bool
	HasWarningMorning   bool
	HasWarningAfternoon bool
	IsFullDay           bool
	HasAnyWarning       bool
}

// AnalyzePeriods classifies each booking of a day by its start hour and
// merges the result into a summary. Bookings without a time are skipped;
// bookings with an unparseable time count towards both halves of the day.
func AnalyzePeriods(bookings []BookingRecord, rules StatusRules) PeriodSummary {
	var sum PeriodSummary

	for _, b := range bookings {
		if b.Time == "" {
			continue
		}
		warning := rules.IsWarning(b.Status)

		start, ok := startHour(b.Time)
		switch {
		case !ok:
			if warning {
				sum.HasWarningMorning = true
				sum.HasWarningAfternoon = true
			} else {
				sum.HasMorning = true
				sum.HasAfternoon = true
			}
		case start < 12:
			if warning {
				sum.HasWarningMorning = true
			} else {
				sum.HasMorning = true
			}
		default:
			if warning {
				sum.HasWarningAfternoon = true
			} else {
				sum.HasAfternoon = true
			}
		}
	}

	sum.IsFullDay = (sum.HasMorning && sum.HasAfternoon) ||
		(sum.HasWarningMorning && sum.HasWarningAfternoon)
	sum.HasAnyWarning = sum.HasWarningMorning || sum.HasWarningAfternoon
	return sum
}
