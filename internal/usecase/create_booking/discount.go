package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

var priceScale = int32(2)

// applyDiscounts вычитает из базовой цены сумму скидок.
// Скидка резидента и фактор промокода складываются, а не перемножаются:
// price - price * (resident + factor). Итог округляется банковским
// округлением до 2 знаков
func applyDiscounts(
	basePrice decimal.Decimal,
	residentDiscount decimal.Decimal,
	isResident bool,
	promocode *domain.Promocode,
) decimal.Decimal {
	discount := decimal.Zero
	if isResident {
		discount = discount.Add(residentDiscount)
	}
	if promocode != nil {
		discount = discount.Add(promocode.Factor)
	}
	return basePrice.Sub(basePrice.Mul(discount)).RoundBank(priceScale)
}
