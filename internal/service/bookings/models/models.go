package models

import (
	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID                      int64   `json:"id"`
	Locator                 string  `json:"locator"`
	Price                   string  `json:"price"`
	SlotIDs                 []int64 `json:"slotIds"`
	Date                    string  `json:"date"`
	CheckinHour             string  `json:"checkinHour"`
	CheckoutHour            string  `json:"checkoutHour"`
	CustomerName            string  `json:"customerName"`
	CustomerEmail           string  `json:"customerEmail,omitempty"`
	CustomerTelephoneNumber string  `json:"customerTelephoneNumber,omitempty"`
	Status                  string  `json:"status"`
	SessionID               string  `json:"sessionId"`
	Extras                  string  `json:"extras,omitempty"`
	Promocode               string  `json:"promocode,omitempty"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                      booking.ID,
		Locator:                 booking.Locator,
		Price:                   booking.Price.StringFixed(2),
		SlotIDs:                 booking.SlotIDs,
		Date:                    booking.Date.Format(domain.DateFormat),
		CheckinHour:             booking.CheckinHour.String(),
		CheckoutHour:            booking.CheckoutHour.String(),
		CustomerName:            booking.CustomerName,
		CustomerEmail:           booking.CustomerEmail,
		CustomerTelephoneNumber: booking.CustomerTelephoneNumber,
		Status:                  string(booking.Status),
		SessionID:               booking.SessionID,
		Extras:                  booking.Extras,
		Promocode:               booking.Promocode,
	}
}
