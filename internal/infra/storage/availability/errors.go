package availability

import "errors"

var (
	// ErrDayDefinitionNotFound возвращается, когда у лодки нет определения дня на дату
	ErrDayDefinitionNotFound = errors.New("availability.repository: day definition not found")

	// ErrDayNotFound возвращается, когда на дату не сгенерирован день
	ErrDayNotFound = errors.New("availability.repository: day not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
