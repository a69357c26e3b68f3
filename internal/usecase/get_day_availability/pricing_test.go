package get_day_availability

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

func dealDefinition() *domain.DayDefinition {
	return &domain.DayDefinition{
		HoursPerSlot:        2,
		NSlots:              4,
		PricePerHour:        decimal.NewFromInt(10),
		NSlotsDealThreshold: 3,
		DiscountWhenDeal:    decimal.RequireFromString("0.1"),
		ResidentDiscount:    decimal.RequireFromString("0.25"),
	}
}

func TestCombinationPrice(t *testing.T) {
	definition := dealDefinition()
	pricePerHour := definition.PricePerHour

	tests := []struct {
		name     string
		size     int
		resident bool
		want     string
	}{
		{name: "base price without discounts", size: 1, resident: false, want: "20.00"},
		{name: "below deal threshold", size: 2, resident: false, want: "40.00"},
		{name: "deal discount at threshold", size: 3, resident: false, want: "54.00"},
		{name: "deal and resident discounts", size: 3, resident: true, want: "40.50"},
		{name: "resident only", size: 2, resident: true, want: "30.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := combinationPrice(tt.size, definition, pricePerHour, tt.resident)
			require.NoError(t, err)
			assert.Equal(t, tt.want, price.StringFixed(2))
		})
	}
}

func TestCombinationPrice_SizeZero(t *testing.T) {
	_, err := combinationPrice(0, dealDefinition(), decimal.NewFromInt(10), false)
	assert.ErrorIs(t, err, ErrCombinationOfSize0)
}

func TestCombinationPrice_DealDisabledByZeroDiscount(t *testing.T) {
	definition := dealDefinition()
	definition.DiscountWhenDeal = decimal.Zero

	price, err := combinationPrice(3, definition, definition.PricePerHour, false)
	require.NoError(t, err)
	assert.Equal(t, "60.00", price.StringFixed(2))
}

func TestCombinationPrice_RoundingIdempotent(t *testing.T) {
	definition := dealDefinition()
	definition.PricePerHour = decimal.RequireFromString("10.333")

	price, err := combinationPrice(3, definition, definition.PricePerHour, true)
	require.NoError(t, err)
	assert.True(t, price.Equal(price.RoundBank(2)), "price must already carry 2 decimal digits")
}

func TestEffectivePricePerHour(t *testing.T) {
	definition := dealDefinition()

	t.Run("no variations", func(t *testing.T) {
		price := effectivePricePerHour(definition, nil)
		assert.Equal(t, "10.00", price.StringFixed(2))
	})

	t.Run("only first variation is honored", func(t *testing.T) {
		variations := []*domain.PriceVariation{
			{Factor: decimal.RequireFromString("1.5")},
			{Factor: decimal.RequireFromString("3")},
		}
		price := effectivePricePerHour(definition, variations)
		assert.Equal(t, "15.00", price.StringFixed(2))
	})

	t.Run("zero factor is ignored", func(t *testing.T) {
		variations := []*domain.PriceVariation{{Factor: decimal.Zero}}
		price := effectivePricePerHour(definition, variations)
		assert.Equal(t, "10.00", price.StringFixed(2))
	})
}
