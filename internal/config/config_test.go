package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[source]
url = "https://example.com/bookings"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "booking-calendar", cfg.Metrics.ServiceName)
	assert.Equal(t, 15, cfg.Source.Timeout)
	assert.Equal(t, "*/15 * * * *", cfg.Source.RefreshCron)
	assert.NotNil(t, cfg.Rooms)
	assert.NotNil(t, cfg.RoomAliases)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[source]
url = "https://example.com/bookings"
refresh_cron = "0 * * * *"

[statuses]
hidden = ["done", "cancel"]
warning = ["progress"]
fallback_label = "Confirmed"

[statuses.labels]
deposit = "Booking confirmed"

[rooms.think_tank]
key = "think tank"
display_name = "THINK TANK"
capacity = "12-25"

[rooms.think_tank.pricing.half_day]
hours = 4
price = "1,150,000 LAK"

[room_aliases]
think_tank = "think tank"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "0 * * * *", cfg.Source.RefreshCron)
	assert.Equal(t, []string{"done", "cancel"}, cfg.Statuses.Hidden)
	assert.Equal(t, "Booking confirmed", cfg.Statuses.Labels["deposit"])

	room, ok := cfg.Rooms["think_tank"]
	require.True(t, ok)
	assert.Equal(t, "think tank", room.Key)
	assert.Equal(t, 4, room.Pricing.HalfDay.Hours)
	assert.Equal(t, "1,150,000 LAK", room.Pricing.HalfDay.Price)
	assert.Equal(t, "think tank", cfg.RoomAliases["think_tank"])
}

func TestLoad_MissingSourceURL(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesSourceURL(t *testing.T) {
	t.Setenv(EnvSourceURL, "https://override.example.com/data")

	path := writeConfig(t, `
[source]
url = "https://example.com/bookings"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/data", cfg.Source.URL)
}

func TestLoad_RoomWithoutKey(t *testing.T) {
	path := writeConfig(t, `
[source]
url = "https://example.com/bookings"

[rooms.broken]
display_name = "BROKEN"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
