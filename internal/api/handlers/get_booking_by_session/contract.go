package get_booking_by_session

import (
	"context"

	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBySession(ctx context.Context, sessionID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
