package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	availabilityRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/availability"
)

// UseCase use case для получения доступности лодок на месяц
type UseCase struct {
	boatRepo         BoatRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	boatRepo BoatRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		boatRepo:         boatRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case классификации месяца
// Любой сбой слоя доступности деградирует до календаря, где каждый день
// помечен NO_AVAILABILITY, вместо возврата ошибки наружу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: month=%d, year=%d", req.Month, req.Year)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату для отсечения прошлого
	today := domain.DateOnly(uc.timeProvider.Now())

	// 3. Получаем все активные лодки
	boats, err := uc.boatRepo.FilterActive(ctx)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get active boats: %v", err)
		return uc.failSafeMonth(req), nil
	}

	// 4. Классифицируем каждый календарный день месяца
	data := make([]DayStatus, 0, 31)
	for date := firstOfMonth(req); date.Month() == time.Month(req.Month); date = date.AddDate(0, 0, 1) {
		dayType, err := uc.classifyDate(ctx, boats, date, today)
		if err != nil {
			uc.logger.Error("GetMonthAvailability: date=%s failed: %v",
				date.Format(domain.DateFormat), err)
			return uc.failSafeMonth(req), nil
		}

		data = append(data, DayStatus{
			Name:     dayType,
			Date:     date,
			Disabled: isDisabled(dayType),
		})
	}

	return &Response{Error: false, Data: data}, nil
}

// classifyDate сводит состояние всех лодок на дату к одному типу.
// Прошедшие даты закрыты без обращения к хранилищу
func (uc *UseCase) classifyDate(
	ctx context.Context,
	boats []*domain.Boat,
	date time.Time,
	today time.Time,
) (domain.DayAvailabilityType, error) {
	if date.Before(today) {
		return domain.DayNoAvailability, nil
	}

	boatTypes := make([]domain.DayAvailabilityType, 0, len(boats))
	for _, boat := range boats {
		day, err := uc.availabilityRepo.GetDay(ctx, boat.ID, date)
		if err != nil {
			// лодка без определения или дня на эту дату недоступна
			if errors.Is(err, availabilityRepo.ErrDayDefinitionNotFound) ||
				errors.Is(err, availabilityRepo.ErrDayNotFound) {
				boatTypes = append(boatTypes, domain.DayNoAvailability)
				continue
			}
			return "", fmt.Errorf("%w: failed to get day for boat id=%d: %v", ErrInternal, boat.ID, err)
		}
		boatTypes = append(boatTypes, day.AvailabilityType())
	}

	return aggregateDayType(boatTypes), nil
}

// failSafeMonth возвращает месяц, где каждый день помечен NO_AVAILABILITY
func (uc *UseCase) failSafeMonth(req *Request) *Response {
	data := make([]DayStatus, 0, 31)
	for date := firstOfMonth(req); date.Month() == time.Month(req.Month); date = date.AddDate(0, 0, 1) {
		data = append(data, DayStatus{
			Name:     domain.DayNoAvailability,
			Date:     date,
			Disabled: true,
		})
	}
	return &Response{Error: false, Data: data}
}

func firstOfMonth(req *Request) time.Time {
	return time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
}
