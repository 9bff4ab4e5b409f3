package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvSourceURL переменная окружения, перекрывающая URL источника бронирований.
// Единственная переменная окружения, которую использует сервис.
const EnvSourceURL = "BOOKING_SOURCE_URL"

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig          `toml:"server"`
	Logs     LogsConfig            `toml:"logs"`
	Metrics  MetricsConfig         `toml:"metrics"`
	Source   SourceConfig          `toml:"source"`
	Company  CompanyConfig         `toml:"company"`
	Statuses StatusesConfig        `toml:"statuses"`
	Rooms    map[string]RoomConfig `toml:"rooms"`

	// RoomAliases отображает URL-идентификаторы страниц (share_hives)
	// на канонические ключи комнат (share hives)
	RoomAliases map[string]string `toml:"room_aliases"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SourceConfig настройки внешнего источника бронирований
type SourceConfig struct {
	// URL endpoint, возвращающий JSON-массив записей бронирований
	URL string `toml:"url"`

	// Timeout таймаут запроса к источнику в секундах
	Timeout int `toml:"timeout"`

	// RefreshCron cron-расписание фонового обновления данных,
	// например "*/15 * * * *"
	RefreshCron string `toml:"refresh_cron"`
}

// CompanyConfig информация о компании и внешняя ссылка бронирования
type CompanyConfig struct {
	Name       string `toml:"name"`
	BookingURL string `toml:"booking_url"`
	Phone      string `toml:"phone"`
	Address    string `toml:"address"`
}

/// StatusesConfig словарь статусов: какие записи скрывать, какие помечать
// предупреждением и как подписывать статусы для отображения
type StatusesConfig struct {
	Hidden        []string          `toml:"hidden"`
	Warning       []string          `toml:"warning"`
	Labels        map[string]string `toml:"labels"`
	FallbackLabel string            `toml:"fallback_label"`
}

// RoomConfig статическая конфигурация комнаты
type RoomConfig struct {
	Key         string        `toml:"key"`
	DisplayName string        `toml:"display_name"`
	Description string        `toml:"description"`
	Capacity    string        `toml:"capacity"`
	Color       string        `toml:"color"`
	Pricing     PricingConfig `toml:"pricing"`
}

// PricingConfig тарифы комнаты
type PricingConfig struct {
	HalfDay PriceTierConfig `toml:"half_day"`
	FullDay PriceTierConfig `toml:"full_day"`
}

// PriceTierConfig один тариф: количество часов и цена (текст с валютой)
type PriceTierConfig struct {
	Hours int    `toml:"hours"`
	Price string `toml:"price"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по
// умолчанию и переменную окружения BOOKING_SOURCE_URL.
// Файл .env подхватывается, если присутствует рядом с бинарём.
func Load(path string) (*Config, error) {
	// .env опционален, в production его может не быть
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if url := os.Getenv(EnvSourceURL); url != "" {
		cfg.Source.URL = url
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults заполняет отсутствующие значения
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-calendar"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 15
	}
	if c.Source.RefreshCron == "" {
		c.Source.RefreshCron = "*/15 * * * *"
	}
	if c.Rooms == nil {
		c.Rooms = map[string]RoomConfig{}
	}
	if c.RoomAliases == nil {
		c.RoomAliases = map[string]string{}
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required (or set %s)", EnvSourceURL)
	}
	for id, room := range c.Rooms {
		if room.Key == "" {
			return fmt.Errorf("rooms.%s: key is required", id)
		}
	}
	return nil
}
