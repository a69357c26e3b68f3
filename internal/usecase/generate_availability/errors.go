package generate_availability

import "errors"

var (
	// ErrAvailabilityAlreadyCreated защищает генерацию года от повторного запуска
	ErrAvailabilityAlreadyCreated = errors.New("availability for this year has already been created")

	// ErrNoDayDefinitions возвращается, когда ни у одной лодки нет определений дней
	ErrNoDayDefinitions = errors.New("no day definitions to generate from")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
