package get_month_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	return nil
}
