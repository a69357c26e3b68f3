package get_month_availability

import (
	"context"
	"time"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	// FilterActive возвращает все активные лодки с фотографиями
	FilterActive(ctx context.Context) ([]*domain.Boat, error)
}

// AvailabilityRepository интерфейс репозитория данных доступности
type AvailabilityRepository interface {
	// GetDay получает день лодки на дату вместе со слотами
	GetDay(ctx context.Context, boatID int64, date time.Time) (*domain.Day, error)
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
