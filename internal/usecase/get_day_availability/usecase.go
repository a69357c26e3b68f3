package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	availabilityRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/availability"
)

// UseCase use case для получения доступности лодок на день
type UseCase struct {
	boatRepo         BoatRepository
	availabilityRepo AvailabilityRepository
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
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности на день
// Ошибки по отдельной лодке не прерывают обход: лодка просто выпадает
// из выдачи, а сбой записывается в лог
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: date=%s, resident=%v",
		req.Date.Format(domain.DateFormat), req.ApplyResidentDiscount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все активные лодки
	boats, err := uc.boatRepo.FilterActive(ctx)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get active boats: %v", err)
		return nil, fmt.Errorf("%w: failed to get active boats: %v", ErrInternal, err)
	}

	// 3. Считаем предложения по каждой лодке отдельно
	data := make([]BoatAvailability, 0, len(boats))
	for _, boat := range boats {
		offers, err := uc.computeBoatOffers(ctx, boat, req)
		if err != nil {
			// у лодки нет данных на эту дату: пропускаем без предложений
			if errors.Is(err, availabilityRepo.ErrDayDefinitionNotFound) ||
				errors.Is(err, availabilityRepo.ErrDayNotFound) ||
				errors.Is(err, ErrNoSlotsAvailable) {
				uc.logger.Info("GetDayAvailability: boat id=%d skipped for date=%s: %v",
					boat.ID, req.Date.Format(domain.DateFormat), err)
				continue
			}
			uc.logger.Error("GetDayAvailability: boat id=%d failed: %v", boat.ID, err)
			continue
		}

		data = append(data, BoatAvailability{
			Boat:         toBoatInfo(boat),
			Availability: offers,
		})
	}

	uc.logger.Info("GetDayAvailability: date=%s, boats=%d", req.Date.Format(domain.DateFormat), len(data))

	return &Response{Error: false, Data: data}, nil
}

// computeBoatOffers строит предложения одной лодки: комбинации свободных
// слотов дня с ценой и таймингом каждой
func (uc *UseCase) computeBoatOffers(ctx context.Context, boat *domain.Boat, req *Request) ([]Offer, error) {
	definition, err := uc.availabilityRepo.GetDayDefinition(ctx, boat.ID, req.Date)
	if err != nil {
		return nil, err
	}

	day, err := uc.availabilityRepo.GetDay(ctx, boat.ID, req.Date)
	if err != nil {
		return nil, err
	}

	combinations, arena, err := generateCombinations(day.FreeSlots())
	if err != nil {
		return nil, err
	}

	variations, err := uc.availabilityRepo.FilterPriceVariations(ctx, boat.ID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get price variations: %v", ErrInternal, err)
	}
	pricePerHour := effectivePricePerHour(definition, variations)

	offers := make([]Offer, 0, len(combinations))
	for _, combination := range combinations {
		price, err := combinationPrice(combination.Size(), definition, pricePerHour, req.ApplyResidentDiscount)
		if err != nil {
			return nil, err
		}

		timing, err := combinationTiming(definition, combination, arena)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute timing: %v", ErrInternal, err)
		}

		offers = append(offers, Offer{
			Slots:    toSlotInfos(combination.Slots(arena)),
			Price:    price,
			FromHour: timing.FromHour,
			ToHour:   timing.ToHour,
		})
	}

	return offers, nil
}

func toBoatInfo(boat *domain.Boat) BoatInfo {
	photos := make([]Photo, 0, len(boat.Photos))
	for _, photo := range boat.Photos {
		photos = append(photos, Photo{URL: photo.URL, Description: photo.Description})
	}
	return BoatInfo{
		ID:          boat.ID,
		Name:        boat.Name,
		Description: boat.Description,
		Photos:      photos,
	}
}

func toSlotInfos(slots []domain.Slot) []SlotInfo {
	infos := make([]SlotInfo, 0, len(slots))
	for _, slot := range slots {
		infos = append(infos, SlotInfo{
			ID:       slot.ID,
			Position: slot.Position,
			FromHour: slot.FromHour,
			ToHour:   slot.ToHour,
		})
	}
	return infos
}
