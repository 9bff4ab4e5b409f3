package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		timeText string
		want     Period
	}{
		{name: "range spanning noon is full-day", timeText: "09:00-17:00", want: PeriodFullDay},
		{name: "morning range", timeText: "09:00-11:00", want: PeriodMorning},
		{name: "range ending exactly at noon is morning", timeText: "09:00-12:00", want: PeriodMorning},
		{name: "afternoon range", timeText: "14:00-17:00", want: PeriodAfternoon},
		{name: "empty text is full-day", timeText: "", want: PeriodFullDay},
		{name: "garbage is full-day", timeText: "garbage", want: PeriodFullDay},
		{name: "12-hour clock spanning noon", timeText: "9:00 AM - 5:00 PM", want: PeriodFullDay},
		{name: "12-hour morning range", timeText: "9:00 AM - 11:30 AM", want: PeriodMorning},
		{name: "12-hour afternoon range", timeText: "2:00 PM - 5:00 PM", want: PeriodAfternoon},
		{name: "single morning time", timeText: "10:00", want: PeriodMorning},
		{name: "single afternoon time", timeText: "15:30", want: PeriodAfternoon},
		{name: "single 12-hour afternoon time", timeText: "5pm", want: PeriodAfternoon},
		{name: "noon pm stays noon", timeText: "12:00 PM", want: PeriodAfternoon},
		{name: "midnight as 12 am is morning", timeText: "12:00 AM", want: PeriodMorning},
		{name: "two tokens without dash use start only", timeText: "9:00 AM to 5:00 PM", want: PeriodMorning},
		{name: "half-hour range after noon", timeText: "13:00-17:30", want: PeriodAfternoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTimeRange(tt.timeText))
		})
	}
}

func TestAnalyzePeriods(t *testing.T) {
	rules := DefaultStatusRules()

	t.Run("empty booking list", func(t *testing.T) {
		sum := AnalyzePeriods(nil, rules)
		assert.Equal(t, PeriodSummary{}, sum)
	})

	t.Run("morning and afternoon bookings make a full day", func(t *testing.T) {
		sum := AnalyzePeriods([]BookingRecord{
			{Time: "09:00-11:00", Status: "deposit"},
			{Time: "14:00-17:00", Status: "booking confirm"},
		}, rules)

		assert.True(t, sum.HasMorning)
		assert.True(t, sum.HasAfternoon)
		assert.True(t, sum.IsFullDay)
		assert.False(t, sum.HasAnyWarning)
	})

	t.Run("in-progress booking lands in the warning halves", func(t *testing.T) {
		sum := AnalyzePeriods([]BookingRecord{
			{Time: "2:00 PM - 5:00 PM", Status: "in progress"},
		}, rules)

		assert.False(t, sum.HasAfternoon)
		assert.True(t, sum.HasWarningAfternoon)
		assert.True(t, sum.HasAnyWarning)
		assert.False(t, sum.IsFullDay)
	})

	t.Run("unparseable time counts for both halves", func(t *testing.T) {
		sum := AnalyzePeriods([]BookingRecord{
			{Time: "tbd", Status: "deposit"},
		}, rules)

		assert.True(t, sum.HasMorning)
		assert.True(t, sum.HasAfternoon)
		assert.True(t, sum.IsFullDay)
	})

	t.Run("booking without time is skipped", func(t *testing.T) {
		sum := AnalyzePeriods([]BookingRecord{
			{Time: "", Status: "booking confirm"},
		}, rules)

		assert.Equal(t, PeriodSummary{}, sum)
	})
}
