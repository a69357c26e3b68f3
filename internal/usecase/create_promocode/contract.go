package create_promocode

import (
	"context"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// PromocodeRepository интерфейс репозитория промокодов
type PromocodeRepository interface {
	// Create создает промокод
	Create(ctx context.Context, promocode *domain.Promocode) (*domain.Promocode, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
