package bookings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	GetByLocator(ctx context.Context, locator string) (*domain.Booking, error)
	UpdateSessionID(ctx context.Context, id int64, sessionID string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AvailabilityRepository интерфейс репозитория данных доступности
type AvailabilityRepository interface {
	GetSlotsByIDs(ctx context.Context, ids []int64) ([]domain.Slot, error)
	GetDayByID(ctx context.Context, id int64) (*domain.Day, error)
	GetDayDefinitionByID(ctx context.Context, id int64) (*domain.DayDefinition, error)
}

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, name, description string, price decimal.Decimal) (string, error)
}

// Mailer интерфейс клиента почтового сервиса
type Mailer interface {
	SendEmail(ctx context.Context, subject, recipient, template string, variables map[string]interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
