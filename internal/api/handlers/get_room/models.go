package get_room

import (
	"github.com/labdelines/booking-calendar/internal/domain"
)

// RoomResponse метаданные комнаты для отображения
type RoomResponse struct {
	Key         string          `json:"key"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Capacity    string          `json:"capacity,omitempty"`
	Color       string          `json:"color"`
	Pricing     PricingResponse `json:"pricing"`

	// Known false означает, что комната не сконфигурирована и отданы
	// дефолтные метаданные
	Known bool `json:"known"`
}

// PricingResponse тарифы комнаты
type PricingResponse struct {
	HalfDay PriceTierResponse `json:"halfDay"`
	FullDay PriceTierResponse `json:"fullDay"`
}

// PriceTierResponse один тариф
type PriceTierResponse struct {
	Hours int    `json:"hours"`
	Price string `json:"price"`
}

// FromRoomConfig конвертирует доменную конфигурацию комнаты в HTTP модель
func FromRoomConfig(cfg domain.RoomConfig, known bool) *RoomResponse {
	return &RoomResponse{
		Key:         cfg.Key,
		DisplayName: cfg.DisplayName,
		Description: cfg.Description,
		Capacity:    cfg.Capacity,
		Color:       cfg.Color,
		Pricing: PricingResponse{
			HalfDay: PriceTierResponse{Hours: cfg.HalfDay.Hours, Price: cfg.HalfDay.Price},
			FullDay: PriceTierResponse{Hours: cfg.FullDay.Hours, Price: cfg.FullDay.Price},
		},
		Known: known,
	}
}
