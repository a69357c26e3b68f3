package create_booking

import (
	"fmt"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, ErrNoSlotsSelected)
	}
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot ids must be positive", ErrInvalidInput)
		}
	}

	if req.BasePrice.IsNegative() || req.BasePrice.IsZero() {
		return fmt.Errorf("%w: basePrice must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}
	if len(req.CustomerTelephoneNumber) > domain.MaxTelephoneLength {
		return fmt.Errorf("%w: customerTelephoneNumber is too long", ErrInvalidInput)
	}
	if len(req.Extras) > domain.MaxExtrasLength {
		return fmt.Errorf("%w: extras is too long", ErrInvalidInput)
	}
	if len(req.Promocode) > domain.MaxPromocodeNameLength {
		return fmt.Errorf("%w: promocode is too long", ErrInvalidInput)
	}

	return nil
}
