package get_month_availability

import (
	"time"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// Request модель запроса доступности на месяц
type Request struct {
	Month int
	Year  int
}

// Response модель ответа с классификацией каждого дня месяца
// Error всегда false: внутренние сбои деградируют до месяца NO_AVAILABILITY
type Response struct {
	Error bool
	Data  []DayStatus
}

// DayStatus агрегированный тип доступности одного календарного дня
type DayStatus struct {
	Name     domain.DayAvailabilityType
	Date     time.Time
	Disabled bool
}
