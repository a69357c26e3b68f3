package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	getMonthAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается число от 1 до 12"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/month/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /availability/month - Invalid year %q: %v", vars["year"], err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /availability/month - Invalid month %q: %v", vars["month"], err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		Month: month,
		Year:  year,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/month - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/month - Failed for %s-%s: %v", vars["year"], vars["month"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
