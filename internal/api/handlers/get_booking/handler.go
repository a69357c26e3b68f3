package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgCheckoutFailed   = "не удалось создать платежную сессию"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Параметр generateNewSession=1 создает новую checkout-сессию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id} - Invalid booking id %q", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	generateNewSession := r.URL.Query().Get("generateNewSession") == "1"

	result, err := h.service.GetByID(r.Context(), bookingID, generateNewSession)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking id=%d not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCheckoutFailed):
			h.logger.Error("GET /bookings/{id} - Checkout failed for booking id=%d: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCheckoutFailed)

		default:
			h.logger.Error("GET /bookings/{id} - Failed for booking id=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
