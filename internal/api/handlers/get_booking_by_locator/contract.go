package get_booking_by_locator

import (
	"context"

	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByLocator(ctx context.Context, locator string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
