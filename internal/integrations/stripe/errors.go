package stripe

import "errors"

var (
	// ErrCheckoutFailed возвращается, когда Stripe отклонил создание сессии
	ErrCheckoutFailed = errors.New("stripe client: checkout session creation failed")

	// ErrInvalidEvent возвращается при некорректном теле webhook-события
	ErrInvalidEvent = errors.New("stripe client: invalid event payload")

	// ErrCustomerNotFound возвращается, когда клиент из события не найден
	ErrCustomerNotFound = errors.New("stripe client: customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe API
	ErrInvalidResponse = errors.New("stripe client: invalid response")
)
