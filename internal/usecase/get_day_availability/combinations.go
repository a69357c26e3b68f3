package get_day_availability

import (
	"sort"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// generateCombinations перечисляет все непрерывные группы свободных слотов.
// Для каждого слота-начала строится цепочка соседних по позиции слотов,
// и каждая промежуточная длина записывается отдельной комбинацией:
// N подряд идущих свободных слотов дают N*(N+1)/2 комбинаций.
//
// Возвращает комбинации как окна индексов в отсортированной арене слотов
func generateCombinations(slots []domain.Slot) ([]domain.Combination, []domain.Slot, error) {
	if len(slots) == 0 {
		return nil, nil, ErrNoSlotsAvailable
	}

	dayID := slots[0].DayID
	for _, slot := range slots[1:] {
		if slot.DayID != dayID {
			return nil, nil, ErrNoSameDaySlots
		}
	}

	sorted := make([]domain.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	// Повторы позиций схлопываются до арены: окна индексов включают все
	// слоты между границами, и дубликат внутри окна попал бы в выдачу.
	// Пропуск дубликата не рвет цепочку соседних позиций
	arena := make([]domain.Slot, 0, len(sorted))
	for _, slot := range sorted {
		if len(arena) > 0 && arena[len(arena)-1].Position == slot.Position {
			continue
		}
		arena = append(arena, slot)
	}

	combinations := make([]domain.Combination, 0, len(arena))
	for start := range arena {
		combinations = append(combinations, domain.Combination{Start: start, End: start})
		for next := start + 1; next < len(arena); next++ {
			// первый разрыв завершает обход от этого слота-начала
			if arena[next].Position-arena[next-1].Position != 1 {
				break
			}
			combinations = append(combinations, domain.Combination{Start: start, End: next})
		}
	}

	return combinations, arena, nil
}
