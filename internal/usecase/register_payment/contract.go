package register_payment

import (
	"context"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/internal/integrations/stripe"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBySessionID получает бронирование по идентификатору checkout-сессии
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	// SetCustomerEmail сохраняет email клиента из платежного события
	SetCustomerEmail(ctx context.Context, id int64, email string) error
	// UpdateStatus обновляет статус бронирования
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AvailabilityRepository интерфейс репозитория данных доступности
type AvailabilityRepository interface {
	// MarkSlotsBooked помечает слоты занятыми
	MarkSlotsBooked(ctx context.Context, ids []int64) error
}

// PromocodeRepository интерфейс репозитория промокодов
type PromocodeRepository interface {
	// IncrementUses атомарно увеличивает счетчик использований промокода
	IncrementUses(ctx context.Context, name string) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	// ParseEvent разбирает тело webhook-события
	ParseEvent(body []byte) (*stripe.Event, error)
	// SessionIDFromEvent извлекает идентификатор checkout-сессии из события
	SessionIDFromEvent(event *stripe.Event) string
	// CustomerEmailFromEvent получает email клиента из события
	CustomerEmailFromEvent(ctx context.Context, event *stripe.Event) (string, error)
}

// Mailer интерфейс клиента почтового сервиса
type Mailer interface {
	// SendEmail отправляет письмо по шаблону
	SendEmail(ctx context.Context, subject, recipient, template string, variables map[string]interface{}) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// Do выполняет функцию в транзакции
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
