package create_promocode

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса создания промокода
type Request struct {
	Name        string
	UseFrom     time.Time
	UseTo       time.Time
	BookingFrom time.Time
	BookingTo   time.Time
	Factor      decimal.Decimal
	LimitOfUses int
}

// Response модель ответа с созданным промокодом
type Response struct {
	ID           int64
	Name         string
	UseFrom      time.Time
	UseTo        time.Time
	BookingFrom  time.Time
	BookingTo    time.Time
	Factor       decimal.Decimal
	LimitOfUses  int
	NumberOfUses int
}
