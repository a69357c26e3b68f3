package mark_booking_error

import (
	"context"

	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	MarkAsError(ctx context.Context, sessionID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
