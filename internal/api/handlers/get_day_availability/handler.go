package get_day_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	getDayAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_day_availability"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/day/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/day - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	applyResidentDiscount := r.URL.Query().Get("resident") == "1"

	result, err := h.useCase.Execute(r.Context(), &getDayAvailability.Request{
		Date:                  date,
		ApplyResidentDiscount: applyResidentDiscount,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/day - Failed for date=%s: %v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
