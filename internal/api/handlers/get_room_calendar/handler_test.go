package get_room_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/service/bookings"
	getRoomCalendar "github.com/labdelines/booking-calendar/internal/usecase/get_room_calendar"
)

type stubUseCase struct {
	lastRequest *getRoomCalendar.Request
	response    *getRoomCalendar.Response
	err         error
}

func (s *stubUseCase) Execute(_ context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func calendarResponse() *getRoomCalendar.Response {
	day := getRoomCalendar.Day{
		Day:     1,
		DateKey: "2025-06-01",
		Status:  domain.DayBooked,
		Bookings: []getRoomCalendar.Booking{
			{
				Room:        "think tank",
				Date:        "2025-06-01",
				Time:        "9:00 AM - 12:00 PM",
				Status:      "deposit",
				StatusLabel: "Booking confirmed",
				Period:      domain.PeriodMorning,
			},
		},
		Periods: domain.PeriodSummary{HasMorning: true},
	}
	blank := getRoomCalendar.Day{}

	return &getRoomCalendar.Response{
		RoomID:    "think_tank",
		RoomKey:   "think tank",
		Room:      domain.RoomConfig{Key: "think tank", DisplayName: "THINK TANK", Color: "#8b5cf6"},
		RoomKnown: true,
		Year:      2025,
		Month:     time.June,
		Days:      []getRoomCalendar.Day{day, blank},
		Weeks:     [][]getRoomCalendar.Day{{day, blank}},
		Stats:     domain.MonthStats{TotalBookings: 1, BookedDays: 1, AvailableDays: 29, TotalDaysInMonth: 30},
		Prev:      domain.YearMonth{Year: 2025, Month: time.May},
		Next:      domain.YearMonth{Year: 2025, Month: time.July},
		Source:    bookings.SourceLive,
		FetchedAt: time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC),
	}
}

func serveCalendar(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/calendar", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	useCase := &stubUseCase{response: calendarResponse()}
	h := NewHandler(useCase, noopLogger{})

	rec := serveCalendar(h, "/api/v1/rooms/think_tank/calendar?year=2025&month=6")

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.lastRequest)
	assert.Equal(t, "think_tank", useCase.lastRequest.RoomID)
	assert.Equal(t, 2025, useCase.lastRequest.Year)
	assert.Equal(t, time.June, useCase.lastRequest.Month)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "think tank", body.RoomKey)
	assert.Equal(t, "June", body.MonthName)
	assert.Equal(t, "live", body.Source)
	assert.Equal(t, "2025-06-10T08:00:00Z", body.FetchedAt)
	assert.Equal(t, 1, body.Stats.TotalBookings)
	assert.Equal(t, 5, body.Prev.Month)
	assert.Equal(t, 7, body.Next.Month)
}

func TestHandler_Handle_BlankCellsSerializeAsNull(t *testing.T) {
	h := NewHandler(&stubUseCase{response: calendarResponse()}, noopLogger{})

	rec := serveCalendar(h, "/api/v1/rooms/think_tank/calendar?year=2025&month=6")

	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Weeks [][]json.RawMessage `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Weeks, 1)
	require.Len(t, raw.Weeks[0], 2)
	assert.Equal(t, "null", string(raw.Weeks[0][1]))
}

func TestHandler_Handle_DefaultsToCurrentMonth(t *testing.T) {
	useCase := &stubUseCase{response: calendarResponse()}
	h := NewHandler(useCase, noopLogger{})
	h.clock = fixedClock{now: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)}

	rec := serveCalendar(h, "/api/v1/rooms/think_tank/calendar")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, useCase.lastRequest)
	assert.Equal(t, 2025, useCase.lastRequest.Year)
	assert.Equal(t, time.June, useCase.lastRequest.Month)
}

func TestHandler_Handle_MalformedQuery(t *testing.T) {
	h := NewHandler(&stubUseCase{response: calendarResponse()}, noopLogger{})

	rec := serveCalendar(h, "/api/v1/rooms/think_tank/calendar?month=june")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serveCalendar(h, "/api/v1/rooms/think_tank/calendar?year=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid month", getRoomCalendar.ErrInvalidMonth, http.StatusBadRequest, msgInvalidMonth},
		{"invalid year", getRoomCalendar.ErrInvalidYear, http.StatusBadRequest, msgInvalidYear},
		{"missing room", getRoomCalendar.ErrMissingRoom, http.StatusBadRequest, msgMissingRoomID},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, noopLogger{})

			rec := serveCalendar(h, "/api/v1/rooms/think_tank/calendar?year=2025&month=13")
			require.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}
