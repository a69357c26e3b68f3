package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

// BookingStatus represents the payment state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusError     BookingStatus = "error"
)

// Booking represents a boat rental purchase.
// Slots are referenced by id; they are marked booked when the payment
// gateway confirms the checkout session.
type Booking struct {
	ID      int64
	Locator string
	Price   decimal.Decimal
	SlotIDs []int64

	Date         time.Time // rental day
	CheckinHour  types.TimeString
	CheckoutHour types.TimeString

	CustomerName            string
	CustomerEmail           string
	CustomerTelephoneNumber string

	Status    BookingStatus
	SessionID string // payment gateway checkout session
	Extras    string
	Promocode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if a payment has been registered for the booking
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanAcceptPayment returns true if a payment event may still confirm the booking
func (b *Booking) CanAcceptPayment() bool {
	return b.Status == StatusPending || b.Status == StatusError
}
