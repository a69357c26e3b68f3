package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда сервис доставки отклонил письмо
	ErrSendFailed = errors.New("mailservice client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")
)
