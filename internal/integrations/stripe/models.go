package stripe

// Event webhook-событие Stripe
// Разбирается только та часть payload, которая нужна для регистрации оплаты
type Event struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	Object EventObject `json:"object"`
}

// EventObject объект checkout-сессии внутри события
type EventObject struct {
	ID       string `json:"id"`       // ID сессии
	Customer string `json:"customer"` // ID клиента Stripe
}

// checkoutSessionResponse ответ Stripe на создание checkout-сессии
type checkoutSessionResponse struct {
	ID string `json:"id"`
}

// customerResponse ответ Stripe на запрос клиента
type customerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// errorResponse модель ошибки Stripe API
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
