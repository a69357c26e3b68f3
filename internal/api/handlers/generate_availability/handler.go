package generate_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	generateAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/generate_availability"
)

const (
	msgInvalidYear      = "некорректный год"
	msgAlreadyGenerated = "доступность на этот год уже сгенерирована"
	msgNoDefinitions    = "нет определений дней для генерации"
)

// GenerationResponse HTTP response model
type GenerationResponse struct {
	Year         int `json:"year"`
	DaysCreated  int `json:"daysCreated"`
	SlotsCreated int `json:"slotsCreated"`
}

type Handler struct {
	useCase GenerateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GenerateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/availability/{year}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateAvailability.Request{Year: year})
	if err != nil {
		switch {
		case errors.Is(err, generateAvailability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, generateAvailability.ErrAvailabilityAlreadyCreated):
			h.logger.Warn("POST /admin/availability - Year %d already generated", year)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyGenerated)

		case errors.Is(err, generateAvailability.ErrNoDayDefinitions):
			h.logger.Warn("POST /admin/availability - No day definitions")
			handlers.RespondBadRequest(w, msgNoDefinitions)

		default:
			h.logger.Error("POST /admin/availability - Failed for year=%d: %v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability - Year %d generated: days=%d, slots=%d",
		result.Year, result.DaysCreated, result.SlotsCreated)

	handlers.RespondJSON(w, http.StatusCreated, GenerationResponse{
		Year:         result.Year,
		DaysCreated:  result.DaysCreated,
		SlotsCreated: result.SlotsCreated,
	})
}

// HandleDelete DELETE /api/v1/admin/availability/{year}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}

	err := h.useCase.ExecuteDelete(r.Context(), &generateAvailability.DeleteRequest{Year: year})
	if err != nil {
		switch {
		case errors.Is(err, generateAvailability.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, generateAvailability.ErrNoDayDefinitions):
			h.logger.Warn("DELETE /admin/availability - No day definitions")
			handlers.RespondBadRequest(w, msgNoDefinitions)

		default:
			h.logger.Error("DELETE /admin/availability - Failed for year=%d: %v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability - Year %d deleted", year)

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["year"]
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		h.logger.Warn("admin/availability - Invalid year %q", raw)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return 0, false
	}
	return year, true
}
