package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocode is a discount code with a usage window, an applicable
// booking-date window and a usage cap. Its counter is incremented when a
// payment is confirmed.
type Promocode struct {
	ID   int64
	Name string

	UseFrom     time.Time // window in which the code may be redeemed
	UseTo       time.Time
	BookingFrom time.Time // window the booked day has to fall into
	BookingTo   time.Time

	Factor       decimal.Decimal
	LimitOfUses  int
	NumberOfUses int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExhausted returns true if the usage cap has been reached
func (p *Promocode) IsExhausted() bool {
	return p.NumberOfUses >= p.LimitOfUses
}

// IsValidFor returns true if the code is redeemable on useDay for a rental
// on bookingDay and has uses left
func (p *Promocode) IsValidFor(useDay, bookingDay time.Time) bool {
	use := DateOnly(useDay)
	booking := DateOnly(bookingDay)
	if use.Before(DateOnly(p.UseFrom)) || use.After(DateOnly(p.UseTo)) {
		return false
	}
	if booking.Before(DateOnly(p.BookingFrom)) || booking.After(DateOnly(p.BookingTo)) {
		return false
	}
	return !p.IsExhausted()
}
