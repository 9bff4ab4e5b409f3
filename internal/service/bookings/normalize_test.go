package bookings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/infra/source"
)

func TestNormalize(t *testing.T) {
	raw := []source.RawRecord{
		{Room: "Think Tank", Date: "2025-06-22", Time: "14:00-17:00", Status: "in progress"},
		{Room: "UNDERLINES", Date: "2025-07-05"},
		{Room: "share hives", Date: ""},                             // нет даты
		{Room: "share hives", Date: "undefined-undefined-Due Date"}, // заглушка экспорта
		{Room: "share hives", Date: "22/06/2025"},                   // не YYYY-MM-DD
		{Room: "share hives", Date: "2025-6-2"},                     // без ведущих нулей
		{Date: "2025-06-10", Status: "deposit"},                     // запись без комнаты
	}

	records := Normalize(raw)

	require.Len(t, records, 3)

	assert.Equal(t, domain.BookingRecord{
		Room:   "think tank",
		Date:   "2025-06-22",
		Time:   "14:00-17:00",
		Status: "in progress",
	}, records[0])

	// Комната приводится к нижнему регистру, пустые поля остаются пустыми
	assert.Equal(t, "underlines", records[1].Room)
	assert.Empty(t, records[1].Time)
	assert.Empty(t, records[1].Status)
	assert.Empty(t, records[1].Duration)

	// Пустая комната допустима ("без комнаты")
	assert.Empty(t, records[2].Room)
	assert.Equal(t, "2025-06-10", records[2].Date)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]source.RawRecord{}))
}

func TestSampleRecords_SatisfyNormalizationInvariant(t *testing.T) {
	for _, rec := range SampleRecords() {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, rec.Date)
		assert.Equal(t, strings.ToLower(rec.Room), rec.Room)
	}
}

func TestSampleRecords_ReturnsFreshSlice(t *testing.T) {
	a := SampleRecords()
	b := SampleRecords()
	require.NotEmpty(t, a)

	a[0].Room = "mutated"
	assert.NotEqual(t, a[0].Room, b[0].Room)
}
