package rooms

import (
	"sort"
	"strings"

	"github.com/labdelines/booking-calendar/internal/config"
	"github.com/labdelines/booking-calendar/internal/domain"
)

// Resolver разрешает ключи и алиасы комнат в статическую конфигурацию
// отображения.
//
// Таблица строится один раз из конфигурации и не мутируется. Поиск
// регистронезависимый; сперва проверяются алиасы (URL-идентификаторы
// страниц вида think_tank), затем канонические ключи. Неизвестный ключ
// не является ошибкой - возвращается дефолтная конфигурация.
type Resolver struct {
	byKey   map[string]domain.RoomConfig
	aliases map[string]string
	logger  Logger
}

// NewResolver строит резолвер из секций [rooms.*] и [room_aliases]
// конфигурации. Идентификаторы секций тоже работают как алиасы, чтобы
// /rooms/think_tank находил комнату с ключом "think tank" без отдельной
// записи в room_aliases.
func NewResolver(roomsCfg map[string]config.RoomConfig, aliasesCfg map[string]string, logger Logger) *Resolver {
	r := &Resolver{
		byKey:   make(map[string]domain.RoomConfig, len(roomsCfg)),
		aliases: make(map[string]string, len(aliasesCfg)+len(roomsCfg)),
		logger:  logger,
	}

	for id, rc := range roomsCfg {
		key := strings.ToLower(rc.Key)
		r.byKey[key] = domain.RoomConfig{
			Key:         key,
			DisplayName: rc.DisplayName,
			Description: rc.Description,
			Capacity:    rc.Capacity,
			Color:       rc.Color,
			HalfDay: domain.PriceTier{
				Hours: rc.Pricing.HalfDay.Hours,
				Price: rc.Pricing.HalfDay.Price,
			},
			FullDay: domain.PriceTier{
				Hours: rc.Pricing.FullDay.Hours,
				Price: rc.Pricing.FullDay.Price,
			},
		}
		r.aliases[strings.ToLower(id)] = key
	}

	for alias, key := range aliasesCfg {
		r.aliases[strings.ToLower(alias)] = strings.ToLower(key)
	}

	return r
}

// CanonicalKey возвращает канонический ключ комнаты для ключа или алиаса.
// Для неизвестного идентификатора возвращает его же в нижнем регистре и
// false.
func (r *Resolver) CanonicalKey(keyOrAlias string) (string, bool) {
	id := strings.ToLower(strings.TrimSpace(keyOrAlias))

	if key, ok := r.aliases[id]; ok {
		return key, true
	}
	if _, ok := r.byKey[id]; ok {
		return id, true
	}
	return id, false
}

// Resolve возвращает конфигурацию комнаты по ключу или алиасу.
// Неизвестные ключи получают дефолтную конфигурацию, ошибок нет.
func (r *Resolver) Resolve(keyOrAlias string) (domain.RoomConfig, bool) {
	key, known := r.CanonicalKey(keyOrAlias)
	if !known {
		r.logger.Warn("Resolve: unknown room key %q, serving default config", keyOrAlias)
		cfg := domain.DefaultRoomConfig()
		cfg.Key = key
		return cfg, false
	}
	return r.byKey[key], true
}

// List возвращает все сконфигурированные комнаты, отсортированные по
// каноническому ключу.
func (r *Resolver) List() []domain.RoomConfig {
	out := make([]domain.RoomConfig, 0, len(r.byKey))
	for _, cfg := range r.byKey {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
