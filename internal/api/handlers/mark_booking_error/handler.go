package mark_booking_error

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings"
)

const (
	msgInvalidSessionID = "некорректный идентификатор сессии"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle PATCH /api/v1/bookings/by-session/{sessionId}/error
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.MarkAsError(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/by-session/error - Invalid session id")
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/by-session/error - No booking for session=%s", sessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("PATCH /bookings/by-session/error - Failed for session=%s: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/by-session/error - Booking id=%d marked as error", result.ID)

	handlers.RespondJSON(w, http.StatusOK, result)
}
