package register_payment

// Request модель запроса регистрации платежного события
// Body это сырое тело webhook-запроса платежного шлюза
type Request struct {
	Body []byte
}

// Response модель ответа регистрации платежа
type Response struct {
	BookingID int64
	Locator   string
}
