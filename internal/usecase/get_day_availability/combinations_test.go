package get_day_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

func makeSlots(dayID int64, positions ...int) []domain.Slot {
	slots := make([]domain.Slot, 0, len(positions))
	for i, position := range positions {
		slots = append(slots, domain.Slot{
			ID:       int64(i + 1),
			DayID:    dayID,
			Position: position,
		})
	}
	return slots
}

func TestGenerateCombinations_ContiguousRun(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		want      int
	}{
		{name: "single slot", positions: []int{0}, want: 1},
		{name: "two contiguous", positions: []int{0, 1}, want: 3},
		{name: "three contiguous", positions: []int{0, 1, 2}, want: 6},
		{name: "four contiguous", positions: []int{0, 1, 2, 3}, want: 10},
		{name: "unsorted input", positions: []int{2, 0, 1}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combinations, arena, err := generateCombinations(makeSlots(1, tt.positions...))
			require.NoError(t, err)

			// N подряд идущих слотов дают N*(N+1)/2 комбинаций
			assert.Len(t, combinations, tt.want)

			for _, combination := range combinations {
				slots := combination.Slots(arena)
				require.NotEmpty(t, slots)
				for i := 1; i < len(slots); i++ {
					assert.Equal(t, slots[i-1].Position+1, slots[i].Position,
						"combination slots must be contiguous and ascending")
				}
			}
		})
	}
}

func TestGenerateCombinations_GapSplitsRuns(t *testing.T) {
	// позиция 2 занята: свободны 0,1 и 3,4
	combinations, arena, err := generateCombinations(makeSlots(1, 0, 1, 3, 4))
	require.NoError(t, err)

	// 3 комбинации слева от разрыва и 3 справа
	assert.Len(t, combinations, 6)

	for _, combination := range combinations {
		slots := combination.Slots(arena)
		first := slots[0].Position
		last := slots[len(slots)-1].Position
		assert.False(t, first <= 2 && last >= 3,
			"no combination may span the booked slot gap")
	}
}

func TestGenerateCombinations_DuplicatePositionsCollapsed(t *testing.T) {
	// дубликат позиции 1 не рвет цепочку 0,1,2 и не попадает в окна
	combinations, arena, err := generateCombinations(makeSlots(1, 0, 1, 1, 2))
	require.NoError(t, err)

	require.Len(t, arena, 3)
	assert.Len(t, combinations, 6)

	for _, combination := range combinations {
		slots := combination.Slots(arena)
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].Position+1, slots[i].Position,
				"a duplicate position must not appear inside a combination")
		}
	}
}

func TestGenerateCombinations_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, _, err := generateCombinations(nil)
		assert.ErrorIs(t, err, ErrNoSlotsAvailable)
	})

	t.Run("slots from different days", func(t *testing.T) {
		slots := append(makeSlots(1, 0, 1), makeSlots(2, 2)...)
		_, _, err := generateCombinations(slots)
		assert.ErrorIs(t, err, ErrNoSameDaySlots)
	})
}

func TestGenerateCombinations_DoesNotMutateInput(t *testing.T) {
	slots := makeSlots(1, 2, 0, 1)
	_, _, err := generateCombinations(slots)
	require.NoError(t, err)

	assert.Equal(t, 2, slots[0].Position)
	assert.Equal(t, 0, slots[1].Position)
}
