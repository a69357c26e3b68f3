package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

// DayAvailabilityType classifies how booked a day is
type DayAvailabilityType string

const (
	DayFree           DayAvailabilityType = "free"
	DayFull           DayAvailabilityType = "full"
	DayPartiallyFree  DayAvailabilityType = "partially_free"
	DayNoAvailability DayAvailabilityType = "no_availability"
)

// DayDefinition is a template describing slot count, timing and pricing
// for a boat over a date range. Days and their slots are generated from it.
type DayDefinition struct {
	ID           int64
	BoatID       int64
	FirstTime    types.TimeString // time when the day starts
	HoursPerSlot int
	NSlots       int
	PricePerHour decimal.Decimal
	FromDate     time.Time
	ToDate       time.Time
	Description  string

	// NSlotsDealThreshold is the combination length from which the deal
	// discount applies; DiscountWhenDeal of zero disables it
	NSlotsDealThreshold int
	DiscountWhenDeal    decimal.Decimal
	ResidentDiscount    decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the definition's validity range includes date
func (d *DayDefinition) Covers(date time.Time) bool {
	day := DateOnly(date)
	return !day.Before(DateOnly(d.FromDate)) && !day.After(DateOnly(d.ToDate))
}

// HasDeal returns true if a deal discount is configured
func (d *DayDefinition) HasDeal() bool {
	return d.NSlotsDealThreshold > 0 && !d.DiscountWhenDeal.IsZero()
}

// SlotTiming derives the clock-time window of the slot at position:
// from = first_time + hours_per_slot * position, to = from + hours_per_slot.
// The arithmetic is wall-clock only; windows reaching past midnight wrap
// around modulo 24 hours.
func (d *DayDefinition) SlotTiming(position int) (SlotTiming, error) {
	from, err := d.FirstTime.AddHours(d.HoursPerSlot * position)
	if err != nil {
		return SlotTiming{}, err
	}
	to, err := from.AddHours(d.HoursPerSlot)
	if err != nil {
		return SlotTiming{}, err
	}
	return SlotTiming{FromHour: from, ToHour: to}, nil
}

// Day is a bookable calendar day of a boat, generated from a DayDefinition.
// It exclusively owns its slots.
type Day struct {
	ID           int64
	DefinitionID int64
	Date         time.Time
	Slots        []Slot
}

// AvailabilityType derives the day state from its slots:
// full if all are booked, free if none are, partially_free otherwise
func (d *Day) AvailabilityType() DayAvailabilityType {
	if len(d.Slots) == 0 {
		return DayNoAvailability
	}
	booked := 0
	for _, slot := range d.Slots {
		if slot.Booked {
			booked++
		}
	}
	switch booked {
	case 0:
		return DayFree
	case len(d.Slots):
		return DayFull
	default:
		return DayPartiallyFree
	}
}

// FreeSlots returns the slots not yet booked
func (d *Day) FreeSlots() []Slot {
	free := make([]Slot, 0, len(d.Slots))
	for _, slot := range d.Slots {
		if !slot.Booked {
			free = append(free, slot)
		}
	}
	return free
}

// Slot is the minimum bookable time unit of a boat on a given day.
// Positions are unique and ascending within a day; two slots are adjacent
// when their positions differ by exactly 1.
type Slot struct {
	ID       int64
	DayID    int64
	Position int
	FromHour types.TimeString
	ToHour   types.TimeString
	Booked   bool
}

// SlotTiming is the clock-time window of a slot or combination
type SlotTiming struct {
	FromHour types.TimeString
	ToHour   types.TimeString
}

// PriceVariation is a multiplicative price factor for a boat over a date
// range. When several variations overlap a date, only the first one in
// stored order is honored.
type PriceVariation struct {
	ID       int64
	BoatID   int64
	FromDate time.Time
	ToDate   time.Time
	Factor   decimal.Decimal
}

// Covers returns true if the variation's range includes date
func (v *PriceVariation) Covers(date time.Time) bool {
	day := DateOnly(date)
	return !day.Before(DateOnly(v.FromDate)) && !day.After(DateOnly(v.ToDate))
}

// Combination is a contiguous run of free slots offered as a single
// rentable window. It is a transient computation artifact, represented as
// an inclusive index window into the sorted free-slot arena rather than a
// copy of the slots.
type Combination struct {
	Start int
	End   int
}

// Size returns the number of slots in the combination
func (c Combination) Size() int {
	return c.End - c.Start + 1
}

// Slots resolves the combination against the arena it was built over
func (c Combination) Slots(arena []Slot) []Slot {
	return arena[c.Start : c.End+1]
}

// DateOnly strips the time-of-day part from t
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
