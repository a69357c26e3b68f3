package get_booking_by_session

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

// Handle GET /api/v1/bookings/by-session/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.GetBySession(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/by-session - Invalid session id")
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/by-session - No booking for session=%s", sessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/by-session - Failed for session=%s: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
