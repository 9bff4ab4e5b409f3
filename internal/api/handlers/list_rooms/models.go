package list_rooms

import (
	"github.com/labdelines/booking-calendar/internal/domain"
)

// ListRoomsResponse список всех сконфигурированных комнат
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// RoomResponse метаданные одной комнаты
type RoomResponse struct {
	Key         string          `json:"key"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Capacity    string          `json:"capacity,omitempty"`
	Color       string          `json:"color"`
	Pricing     PricingResponse `json:"pricing"`
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

// FromRoomConfigs конвертирует доменные конфигурации комнат в HTTP модель
func FromRoomConfigs(rooms []domain.RoomConfig) *ListRoomsResponse {
	out := &ListRoomsResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, cfg := range rooms {
		out.Rooms = append(out.Rooms, RoomResponse{
			Key:         cfg.Key,
			DisplayName: cfg.DisplayName,
			Description: cfg.Description,
			Capacity:    cfg.Capacity,
			Color:       cfg.Color,
			Pricing: PricingResponse{
				HalfDay: PriceTierResponse{Hours: cfg.HalfDay.Hours, Price: cfg.HalfDay.Price},
				FullDay: PriceTierResponse{Hours: cfg.FullDay.Hours, Price: cfg.FullDay.Price},
			},
		})
	}
	return out
}
