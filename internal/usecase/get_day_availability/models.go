package get_day_availability

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/pkg/types"
)

// Request модель запроса доступности на день
type Request struct {
	Date                  time.Time // дата, на которую запрашивается доступность
	ApplyResidentDiscount bool      // применять ли скидку для резидентов
}

// Response модель ответа со списком предложений по каждой лодке
// Error всегда false: внутренние сбои деградируют до пустого списка
type Response struct {
	Error bool
	Data  []BoatAvailability
}

// BoatAvailability предложения одной лодки на день
type BoatAvailability struct {
	Boat         BoatInfo
	Availability []Offer
}

// BoatInfo данные лодки для витрины
type BoatInfo struct {
	ID          int64
	Name        string
	Description string
	Photos      []Photo
}

// Photo фотография лодки
type Photo struct {
	URL         string
	Description string
}

// Offer цена и тайминг одной комбинации слотов
type Offer struct {
	Slots    []SlotInfo
	Price    decimal.Decimal
	FromHour types.TimeString
	ToHour   types.TimeString
}

// SlotInfo слот внутри комбинации
type SlotInfo struct {
	ID       int64
	Position int
	FromHour types.TimeString
	ToHour   types.TimeString
}
