package get_month_availability

import (
	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	getMonthAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	Error bool            `json:"error"`
	Data  []DayStatusItem `json:"data"`
}

// DayStatusItem состояние одного календарного дня
type DayStatusItem struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	data := make([]DayStatusItem, 0, len(resp.Data))
	for _, day := range resp.Data {
		data = append(data, DayStatusItem{
			Name:     string(day.Name),
			Date:     day.Date.Format(domain.DateFormat),
			Disabled: day.Disabled,
		})
	}
	return &MonthAvailabilityResponse{Error: resp.Error, Data: data}
}
