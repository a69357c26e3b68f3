package get_day_availability

import "errors"

var (
	// ErrNoSlotsAvailable возвращается, когда у дня нет свободных слотов
	ErrNoSlotsAvailable = errors.New("no slots available for this day")

	// ErrNoSameDaySlots возвращается, когда слоты принадлежат разным дням
	ErrNoSameDaySlots = errors.New("slots don't belong to the same day")

	// ErrCombinationOfSize0 возвращается при комбинации нулевого размера
	// Защитная проверка: по построению комбинаций не должна срабатывать
	ErrCombinationOfSize0 = errors.New("combination of size 0")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
