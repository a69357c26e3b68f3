package get_day_availability

import (
	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// combinationTiming возвращает временное окно комбинации:
// от начала первого слота до конца последнего
func combinationTiming(
	definition *domain.DayDefinition,
	combination domain.Combination,
	arena []domain.Slot,
) (domain.SlotTiming, error) {
	if combination.Size() == 0 {
		return domain.SlotTiming{}, ErrCombinationOfSize0
	}

	slots := combination.Slots(arena)

	first, err := definition.SlotTiming(slots[0].Position)
	if err != nil {
		return domain.SlotTiming{}, err
	}
	if len(slots) == 1 {
		return first, nil
	}

	last, err := definition.SlotTiming(slots[len(slots)-1].Position)
	if err != nil {
		return domain.SlotTiming{}, err
	}

	return domain.SlotTiming{FromHour: first.FromHour, ToHour: last.ToHour}, nil
}
