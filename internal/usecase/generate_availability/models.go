package generate_availability

// Request модель запроса генерации доступности на год
type Request struct {
	Year int
}

// Response модель ответа генерации
type Response struct {
	Year         int
	DaysCreated  int
	SlotsCreated int
}

// DeleteRequest модель запроса удаления сгенерированного года
type DeleteRequest struct {
	Year int
}
