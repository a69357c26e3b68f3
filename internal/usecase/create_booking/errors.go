package create_booking

import "errors"

var (
	// ErrNoSlotsSelected возвращается, когда в запросе нет слотов
	ErrNoSlotsSelected = errors.New("a purchase requires slots")

	// ErrSlotNotFound возвращается, когда часть слотов не существует
	ErrSlotNotFound = errors.New("some of the selected slots do not exist")

	// ErrNoSameDaySlots возвращается, когда слоты принадлежат разным дням
	ErrNoSameDaySlots = errors.New("slots don't belong to the same day")

	// ErrSlotAlreadyBooked возвращается, когда часть слотов уже забронирована
	ErrSlotAlreadyBooked = errors.New("some of the selected slots are already booked")

	// ErrCheckoutFailed возвращается при отказе платежного шлюза
	ErrCheckoutFailed = errors.New("failed to create checkout session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
