package create_promocode

import "errors"

var (
	// ErrPromocodeExists возвращается при создании промокода с занятым именем
	ErrPromocodeExists = errors.New("promocode with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
