package get_day_availability

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
	// GetDayDefinition получает определение дня лодки на дату
	GetDayDefinition(ctx context.Context, boatID int64, date time.Time) (*domain.DayDefinition, error)
	// GetDay получает день лодки на дату вместе со слотами
	GetDay(ctx context.Context, boatID int64, date time.Time) (*domain.Day, error)
	// FilterPriceVariations возвращает вариации цен лодки на дату в порядке хранения
	FilterPriceVariations(ctx context.Context, boatID int64, date time.Time) ([]*domain.PriceVariation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
