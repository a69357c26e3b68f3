package create_booking

import (
	"errors"
	"net/http"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	createBooking "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoSlotsSelected    = "не выбраны слоты для бронирования"
	msgSlotNotFound       = "часть выбранных слотов не существует"
	msgSlotsNotSameDay    = "слоты должны принадлежать одному дню"
	msgSlotAlreadyBooked  = "часть выбранных слотов уже забронирована"
	msgCheckoutFailed     = "не удалось создать платежную сессию"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to validate request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoSlotsSelected):
			h.logger.Warn("POST /bookings - No slots selected")
			handlers.RespondBadRequest(w, msgNoSlotsSelected)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slots not found: %v", req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrNoSameDaySlots):
			h.logger.Warn("POST /bookings - Slots span multiple days: %v", req.SlotIDs)
			handlers.RespondBadRequest(w, msgSlotsNotSameDay)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slots already booked: %v", req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrCheckoutFailed):
			h.logger.Error("POST /bookings - Checkout failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCheckoutFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, locator=%s",
		result.Booking.ID, result.Booking.Locator)

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
