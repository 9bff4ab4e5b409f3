package get_room

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdelines/booking-calendar/internal/domain"
)

type stubResolver struct {
	rooms map[string]domain.RoomConfig
}

func (s *stubResolver) Resolve(keyOrAlias string) (domain.RoomConfig, bool) {
	if cfg, ok := s.rooms[keyOrAlias]; ok {
		return cfg, true
	}
	cfg := domain.DefaultRoomConfig()
	cfg.Key = keyOrAlias
	return cfg, false
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func serveRoom(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle_KnownRoom(t *testing.T) {
	resolver := &stubResolver{rooms: map[string]domain.RoomConfig{
		"think_tank": {
			Key:         "think tank",
			DisplayName: "THINK TANK",
			Color:       "#8b5cf6",
			HalfDay:     domain.PriceTier{Hours: 4, Price: "60,000 LAK"},
			FullDay:     domain.PriceTier{Hours: 8, Price: "100,000 LAK"},
		},
	}}
	h := NewHandler(resolver, noopLogger{})

	rec := serveRoom(h, "/api/v1/rooms/think_tank")

	require.Equal(t, http.StatusOK, rec.Code)

	var body RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "think tank", body.Key)
	assert.Equal(t, "THINK TANK", body.DisplayName)
	assert.Equal(t, 4, body.Pricing.HalfDay.Hours)
	assert.True(t, body.Known)
}

func TestHandler_Handle_UnknownRoomServesDefault(t *testing.T) {
	h := NewHandler(&stubResolver{}, noopLogger{})

	rec := serveRoom(h, "/api/v1/rooms/cellar")

	require.Equal(t, http.StatusOK, rec.Code)

	var body RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cellar", body.Key)
	assert.Equal(t, "WORKSPACE", body.DisplayName)
	assert.False(t, body.Known)
}
