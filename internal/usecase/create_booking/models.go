package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

// Request модель запроса создания бронирования
// BasePrice это цена комбинации, рассчитанная витриной доступности;
// скидки резидента и промокода применяются поверх нее
type Request struct {
	BasePrice               decimal.Decimal
	SlotIDs                 []int64
	CustomerName            string
	CustomerTelephoneNumber string
	Extras                  string
	IsResident              bool
	Promocode               string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking BookingInfo
}

// BookingInfo данные созданного бронирования
type BookingInfo struct {
	ID           int64
	Locator      string
	Price        decimal.Decimal
	SlotIDs      []int64
	Date         time.Time
	CheckinHour  types.TimeString
	CheckoutHour types.TimeString
	CustomerName string
	Status       domain.BookingStatus
	SessionID    string
	Extras       string
	Promocode    string
}

func toBookingInfo(booking *domain.Booking) BookingInfo {
	return BookingInfo{
		ID:           booking.ID,
		Locator:      booking.Locator,
		Price:        booking.Price,
		SlotIDs:      booking.SlotIDs,
		Date:         booking.Date,
		CheckinHour:  booking.CheckinHour,
		CheckoutHour: booking.CheckoutHour,
		CustomerName: booking.CustomerName,
		Status:       booking.Status,
		SessionID:    booking.SessionID,
		Extras:       booking.Extras,
		Promocode:    booking.Promocode,
	}
}
