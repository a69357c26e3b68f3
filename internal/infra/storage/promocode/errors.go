package promocode

import "errors"

var (
	// ErrPromocodeNotFound возвращается, когда промокод не найден
	// или не проходит по окнам действия / лимиту использований
	ErrPromocodeNotFound = errors.New("promocode.repository: promocode not found")

	// ErrPromocodeExists возвращается при создании промокода с занятым именем
	ErrPromocodeExists = errors.New("promocode.repository: promocode already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promocode.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promocode.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promocode.repository: failed to scan row")
)
