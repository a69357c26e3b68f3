package generate_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// UseCase use case генерации доступности на год
// Создает дни и слоты по всем определениям дней активных лодок
type UseCase struct {
	boatRepo         BoatRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	boatRepo BoatRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		boatRepo:         boatRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case генерации года
// Повторный запуск для года, где дни уже есть, отклоняется целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateAvailability: year=%d", req.Year)

	// 1. Валидация входных данных
	if err := validateYear(req.Year); err != nil {
		uc.logger.Warn("GenerateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем определения дней всех активных лодок
	definitions, err := uc.collectDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	definitionIDs := make([]int64, 0, len(definitions))
	for _, definition := range definitions {
		definitionIDs = append(definitionIDs, definition.ID)
	}

	// 3. Защита от повторной генерации
	exists, err := uc.availabilityRepo.ExistsDaysForYear(ctx, definitionIDs, req.Year)
	if err != nil {
		uc.logger.Error("GenerateAvailability: failed to check year=%d: %v", req.Year, err)
		return nil, fmt.Errorf("%w: failed to check existing days: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("GenerateAvailability: year=%d already generated", req.Year)
		return nil, ErrAvailabilityAlreadyCreated
	}

	// 4. Создаем дни и слоты в одной транзакции
	var daysCreated, slotsCreated int
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, definition := range definitions {
			days, slots, err := uc.generateForDefinition(txCtx, definition, req.Year)
			if err != nil {
				return err
			}
			daysCreated += days
			slotsCreated += slots
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateAvailability: transaction failed for year=%d: %v", req.Year, err)
		return nil, err
	}

	uc.logger.Info("GenerateAvailability: year=%d, days=%d, slots=%d", req.Year, daysCreated, slotsCreated)

	return &Response{Year: req.Year, DaysCreated: daysCreated, SlotsCreated: slotsCreated}, nil
}

// ExecuteDelete удаляет все сгенерированные дни года вместе со слотами
func (uc *UseCase) ExecuteDelete(ctx context.Context, req *DeleteRequest) error {
	uc.logger.Info("DeleteAvailability: year=%d", req.Year)

	if err := validateYear(req.Year); err != nil {
		uc.logger.Warn("DeleteAvailability: validation failed: %v", err)
		return err
	}

	definitions, err := uc.collectDefinitions(ctx)
	if err != nil {
		return err
	}

	definitionIDs := make([]int64, 0, len(definitions))
	for _, definition := range definitions {
		definitionIDs = append(definitionIDs, definition.ID)
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.availabilityRepo.DeleteDaysForYear(txCtx, definitionIDs, req.Year); err != nil {
			return fmt.Errorf("%w: failed to delete days: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("DeleteAvailability: transaction failed for year=%d: %v", req.Year, err)
		return err
	}

	return nil
}

// generateForDefinition создает дни и слоты одного определения в пределах
// пересечения года и диапазона действия определения
func (uc *UseCase) generateForDefinition(
	ctx context.Context,
	definition *domain.DayDefinition,
	year int,
) (int, int, error) {
	from, to := definitionYearRange(definition, year)
	if from.After(to) {
		return 0, 0, nil
	}

	daysCreated := 0
	slotsCreated := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day, err := uc.availabilityRepo.CreateDay(ctx, definition.ID, date)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: failed to create day %s: %v",
				ErrInternal, date.Format(domain.DateFormat), err)
		}

		slots, err := buildSlots(definition, day.ID)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: failed to build slots for day %s: %v",
				ErrInternal, date.Format(domain.DateFormat), err)
		}
		if _, err := uc.availabilityRepo.CreateSlots(ctx, slots); err != nil {
			return 0, 0, fmt.Errorf("%w: failed to create slots for day %s: %v",
				ErrInternal, date.Format(domain.DateFormat), err)
		}

		daysCreated++
		slotsCreated += len(slots)
	}

	return daysCreated, slotsCreated, nil
}

func (uc *UseCase) collectDefinitions(ctx context.Context) ([]*domain.DayDefinition, error) {
	boats, err := uc.boatRepo.FilterActive(ctx)
	if err != nil {
		uc.logger.Error("GenerateAvailability: failed to get active boats: %v", err)
		return nil, fmt.Errorf("%w: failed to get active boats: %v", ErrInternal, err)
	}

	definitions := make([]*domain.DayDefinition, 0)
	for _, boat := range boats {
		boatDefinitions, err := uc.availabilityRepo.FilterDayDefinitions(ctx, boat.ID)
		if err != nil {
			uc.logger.Error("GenerateAvailability: failed to get definitions for boat id=%d: %v", boat.ID, err)
			return nil, fmt.Errorf("%w: failed to get day definitions: %v", ErrInternal, err)
		}
		definitions = append(definitions, boatDefinitions...)
	}
	if len(definitions) == 0 {
		return nil, ErrNoDayDefinitions
	}
	return definitions, nil
}

// buildSlots порождает свободные слоты дня по таймингу определения
func buildSlots(definition *domain.DayDefinition, dayID int64) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0, definition.NSlots)
	for position := 0; position < definition.NSlots; position++ {
		timing, err := definition.SlotTiming(position)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.Slot{
			DayID:    dayID,
			Position: position,
			FromHour: timing.FromHour,
			ToHour:   timing.ToHour,
			Booked:   false,
		})
	}
	return slots, nil
}

// definitionYearRange возвращает пересечение года и диапазона действия
// определения
func definitionYearRange(definition *domain.DayDefinition, year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	defFrom := domain.DateOnly(definition.FromDate)
	defTo := domain.DateOnly(definition.ToDate)
	if defFrom.After(from) {
		from = defFrom
	}
	if defTo.Before(to) {
		to = defTo
	}
	return from, to
}

func validateYear(year int) error {
	if year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	return nil
}
