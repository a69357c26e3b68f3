package get_booking_by_locator

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings"
)

const (
	msgInvalidLocator  = "некорректный локатор"
	msgBookingNotFound = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/by-locator/{locator}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locator := mux.Vars(r)["locator"]

	result, err := h.service.GetByLocator(r.Context(), locator)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/by-locator - Invalid locator")
			handlers.RespondBadRequest(w, msgInvalidLocator)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/by-locator - No booking for locator=%s", locator)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/by-locator - Failed for locator=%s: %v", locator, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
