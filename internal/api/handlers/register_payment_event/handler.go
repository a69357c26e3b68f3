package register_payment_event

import (
	"errors"
	"io"
	"net/http"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	registerPayment "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/register_payment"
)

const (
	msgInvalidEvent    = "некорректное платежное событие"
	msgBookingNotFound = "бронирование для сессии не найдено"
)

// тело webhook-события ограничено, чтобы не читать произвольно большой запрос
const maxEventBodySize = 1 << 20

type Handler struct {
	useCase RegisterPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RegisterPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/events
// Платежный шлюз повторяет доставку при не-2xx ответе, поэтому уже
// подтвержденное бронирование отвечает 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBodySize))
	if err != nil {
		h.logger.Warn("POST /payments/events - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEvent)
		return
	}
	defer r.Body.Close()

	result, err := h.useCase.Execute(r.Context(), &registerPayment.Request{Body: body})
	if err != nil {
		switch {
		case errors.Is(err, registerPayment.ErrInvalidEvent):
			h.logger.Warn("POST /payments/events - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		case errors.Is(err, registerPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/events - Booking not found: %v", err)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, registerPayment.ErrBookingNotPayable):
			h.logger.Warn("POST /payments/events - Booking already confirmed: %v", err)
			handlers.RespondJSON(w, http.StatusOK, nil)

		default:
			h.logger.Error("POST /payments/events - Failed to register payment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/events - Payment registered: booking id=%d, locator=%s",
		result.BookingID, result.Locator)

	handlers.RespondJSON(w, http.StatusOK, nil)
}
