package create_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование вместе со связями на слоты
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория данных доступности
type AvailabilityRepository interface {
	// GetSlotsByIDs получает слоты по идентификаторам
	// Внутри транзакции строки блокируются через FOR UPDATE
	GetSlotsByIDs(ctx context.Context, ids []int64) ([]domain.Slot, error)
	// GetDayByID получает день по идентификатору вместе со слотами
	GetDayByID(ctx context.Context, id int64) (*domain.Day, error)
	// GetDayDefinitionByID получает определение дня по идентификатору
	GetDayDefinitionByID(ctx context.Context, id int64) (*domain.DayDefinition, error)
}

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	// GetByID получает лодку по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
}

// PromocodeRepository интерфейс репозитория промокодов
type PromocodeRepository interface {
	// GetValid возвращает промокод, действующий на useDay для аренды на bookingDay
	GetValid(ctx context.Context, name string, useDay, bookingDay time.Time) (*domain.Promocode, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	// CreateCheckoutSession создает checkout-сессию и возвращает ее идентификатор
	CreateCheckoutSession(ctx context.Context, name, description string, price decimal.Decimal) (string, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
