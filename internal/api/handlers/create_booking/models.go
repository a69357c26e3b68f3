package create_booking

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	createBooking "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_booking"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BasePrice               string  `json:"basePrice" validate:"required"`
	SlotIDs                 []int64 `json:"slotIds" validate:"required,min=1,dive,gt=0"`
	CustomerName            string  `json:"customerName" validate:"required,max=100"`
	CustomerTelephoneNumber string  `json:"customerTelephoneNumber" validate:"max=100"`
	Extras                  string  `json:"extras" validate:"max=500"`
	IsResident              bool    `json:"isResident"`
	Promocode               string  `json:"promocode" validate:"omitempty,alphanum,max=20"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	Locator      string  `json:"locator"`
	Price        string  `json:"price"`
	SlotIDs      []int64 `json:"slotIds"`
	Date         string  `json:"date"`
	CheckinHour  string  `json:"checkinHour"`
	CheckoutHour string  `json:"checkoutHour"`
	CustomerName string  `json:"customerName"`
	Status       string  `json:"status"`
	SessionID    string  `json:"sessionId"`
	Extras       string  `json:"extras,omitempty"`
	Promocode    string  `json:"promocode,omitempty"`
}

// ToUseCaseRequest валидирует HTTP запрос и конвертирует его в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	basePrice, err := decimal.NewFromString(r.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("parse basePrice: %w", err)
	}

	return &createBooking.Request{
		BasePrice:               basePrice,
		SlotIDs:                 r.SlotIDs,
		CustomerName:            r.CustomerName,
		CustomerTelephoneNumber: r.CustomerTelephoneNumber,
		Extras:                  r.Extras,
		IsResident:              r.IsResident,
		Promocode:               r.Promocode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking
	return &BookingResponse{
		ID:           booking.ID,
		Locator:      booking.Locator,
		Price:        booking.Price.StringFixed(2),
		SlotIDs:      booking.SlotIDs,
		Date:         booking.Date.Format(domain.DateFormat),
		CheckinHour:  booking.CheckinHour.String(),
		CheckoutHour: booking.CheckoutHour.String(),
		CustomerName: booking.CustomerName,
		Status:       string(booking.Status),
		SessionID:    booking.SessionID,
		Extras:       booking.Extras,
		Promocode:    booking.Promocode,
	}
}
