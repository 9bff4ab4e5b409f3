package bookings

import "github.com/labdelines/booking-calendar/internal/domain"

// SampleRecords возвращает встроенный набор записей, используемый когда
// внешний источник недоступен. Набор повторяет реальные данные таблицы и
// покрывает все комнаты и все варианты статусов (включая скрываемые),
// поэтому календарь с fallback-данными выглядит как живой.
//
// Каждый вызов возвращает свежий срез - снапшоты не делят память.
func SampleRecords() []domain.BookingRecord {
	return []domain.BookingRecord{
		// Share Hives
		{Room: "share hives", Date: "2025-06-20", Time: "10:00 AM - 12:00 PM", Status: "booking confirm", Duration: "2 hours"},
		{Room: "share hives", Date: "2025-06-23", Time: "3:00 PM - 5:00 PM", Status: "booking confirm", Duration: "2 hours"},
		{Room: "share hives", Date: "2025-06-24", Time: "9:00 AM - 5:00 PM", Status: "in progress", Duration: "8 hours"},

		// Focus Capsule
		{Room: "focus capsule", Date: "2025-06-20", Time: "9:00 AM - 1:00 PM", Status: "deposit", Duration: "4 hours"},
		{Room: "focus capsule", Date: "2025-06-21", Time: "11:00 AM - 2:00 PM", Status: "deposit", Duration: "3 hours"},
		{Room: "focus capsule", Date: "2025-06-02", Time: "09:00-18:00", Status: "Done"},
		{Room: "focus capsule", Date: "2025-06-03", Time: "09:00-18:00", Status: "Done"},
		{Room: "focus capsule", Date: "2025-05-06", Time: "9:30-17:30", Status: "Done"},

		// Think Tank
		{Room: "think tank", Date: "2025-06-22", Time: "2:00 PM - 5:00 PM", Status: "in progress", Duration: "3 hours"},
		{Room: "think tank", Date: "2025-06-18", Time: "1:00 PM - 5:00 PM", Status: "done", Duration: "4 hours"},

		// Underlines
		{Room: "underlines", Date: "2025-06-28", Time: "09:00-12:00", Status: "deposit"},
		{Room: "underlines", Date: "2025-06-30", Time: "09:00-12:00", Status: "deposit"},
		{Room: "underlines", Date: "2025-07-05", Time: "", Status: "Booking confirm"},
		{Room: "underlines", Date: "2025-07-06", Time: "", Status: "Booking confirm"},
		{Room: "underlines", Date: "2025-07-16", Time: "09:00-17:30", Status: "deposit"},
		{Room: "underlines", Date: "2025-08-09", Time: "09:00-17:00", Status: "Booking confirm"},
		{Room: "underlines", Date: "2025-08-10", Time: "09:00-17:00", Status: "Booking confirm"},

		// Event Space Indoor
		{Room: "event space indoor", Date: "2025-06-25", Time: "9:00 AM - 1:00 PM", Status: "deposit", Duration: "4 hours"},
		{Room: "event space indoor", Date: "2025-06-26", Time: "10:00 AM - 4:00 PM", Status: "booking confirm", Duration: "6 hours"},
		{Room: "event space indoor", Date: "2025-07-10", Time: "9:00 AM - 5:00 PM", Status: "deposit", Duration: "8 hours"},

		// Event Space Outdoor
		{Room: "event space outdoor", Date: "2025-06-28", Time: "10:00 AM - 4:00 PM", Status: "deposit", Duration: "6 hours"},
		{Room: "event space outdoor", Date: "2025-06-29", Time: "9:00 AM - 5:00 PM", Status: "booking confirm", Duration: "8 hours"},
		{Room: "event space outdoor", Date: "2025-07-20", Time: "3:00 PM - 5:00 PM", Status: "booking confirm", Duration: "2 hours"},

		// Отмененная запись: не должна появляться на календаре
		{Room: "event space", Date: "2025-06-19", Time: "3:00 PM - 5:00 PM", Status: "cancel", Duration: "2 hours"},
	}
}
