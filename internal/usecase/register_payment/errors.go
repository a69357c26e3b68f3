package register_payment

import "errors"

var (
	// ErrInvalidEvent возвращается при нечитаемом webhook-событии
	ErrInvalidEvent = errors.New("invalid payment event")

	// ErrBookingNotFound возвращается, когда сессия события не связана с бронированием
	ErrBookingNotFound = errors.New("booking not found for session")

	// ErrBookingNotPayable возвращается, когда бронирование уже подтверждено
	ErrBookingNotPayable = errors.New("booking can no longer accept payments")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
