package generate_availability

import (
	"context"
	"time"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	// FilterActive возвращает все активные лодки
	FilterActive(ctx context.Context) ([]*domain.Boat, error)
}

// AvailabilityRepository интерфейс репозитория данных доступности
type AvailabilityRepository interface {
	// FilterDayDefinitions возвращает все определения дней лодки
	FilterDayDefinitions(ctx context.Context, boatID int64) ([]*domain.DayDefinition, error)
	// ExistsDaysForYear проверяет, сгенерированы ли дни на год
	ExistsDaysForYear(ctx context.Context, definitionIDs []int64, year int) (bool, error)
	// CreateDay создает день по определению
	CreateDay(ctx context.Context, definitionID int64, date time.Time) (*domain.Day, error)
	// CreateSlots создает слоты дня
	CreateSlots(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error)
	// DeleteDaysForYear удаляет дни года вместе со слотами
	DeleteDaysForYear(ctx context.Context, definitionIDs []int64, year int) error
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
