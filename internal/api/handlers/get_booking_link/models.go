package get_booking_link

import (
	"github.com/labdelines/booking-calendar/internal/config"
)

// BookingLinkResponse контакт для бронирования: запись создается не на
// сайте, а через внешний канал (WhatsApp)
type BookingLinkResponse struct {
	CompanyName string `json:"companyName"`
	BookingURL  string `json:"bookingUrl"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// FromCompanyConfig конвертирует секцию [company] конфигурации в HTTP модель
func FromCompanyConfig(cfg config.CompanyConfig) *BookingLinkResponse {
	return &BookingLinkResponse{
		CompanyName: cfg.Name,
		BookingURL:  cfg.BookingURL,
		Phone:       cfg.Phone,
		Address:     cfg.Address,
	}
}
