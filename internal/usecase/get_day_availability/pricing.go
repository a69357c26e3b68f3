package get_day_availability

import (
	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

var oneHundredCentsPrecision = int32(2)

// effectivePricePerHour возвращает цену часа с учетом вариаций цен.
// Применяется только первая подходящая вариация в порядке хранения,
// даже если на дату попадает несколько. Результат округляется до 2 знаков
func effectivePricePerHour(definition *domain.DayDefinition, variations []*domain.PriceVariation) decimal.Decimal {
	price := definition.PricePerHour
	if len(variations) > 0 && !variations[0].Factor.IsZero() {
		price = price.Mul(variations[0].Factor)
	}
	return price.RoundBank(oneHundredCentsPrecision)
}

// combinationPrice вычисляет цену комбинации:
//  1. базовая цена = размер * часов в слоте * эффективная цена часа
//  2. при достижении порога сделки вычитается base * discount_when_deal
//  3. при флаге резидента вычитается price * resident_discount
//
// Итог округляется банковским округлением до 2 знаков
func combinationPrice(
	size int,
	definition *domain.DayDefinition,
	pricePerHour decimal.Decimal,
	applyResidentDiscount bool,
) (decimal.Decimal, error) {
	if size == 0 {
		return decimal.Zero, ErrCombinationOfSize0
	}

	base := decimal.NewFromInt(int64(size)).
		Mul(decimal.NewFromInt(int64(definition.HoursPerSlot))).
		Mul(pricePerHour)

	price := base
	if size >= definition.NSlotsDealThreshold && !definition.DiscountWhenDeal.IsZero() {
		price = price.Sub(base.Mul(definition.DiscountWhenDeal))
	}
	if applyResidentDiscount {
		price = price.Sub(price.Mul(definition.ResidentDiscount))
	}

	return price.RoundBank(oneHundredCentsPrecision), nil
}
