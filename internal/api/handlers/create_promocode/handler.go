package create_promocode

import (
	"errors"
	"net/http"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
	createPromocode "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_promocode"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPromocodeExists    = "промокод с таким именем уже существует"
)

type Handler struct {
	useCase CreatePromocodeUseCase
	logger  Logger
}

func NewHandler(useCase CreatePromocodeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/promocodes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePromocodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promocodes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/promocodes - Failed to validate request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPromocode.ErrInvalidInput):
			h.logger.Warn("POST /admin/promocodes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createPromocode.ErrPromocodeExists):
			h.logger.Warn("POST /admin/promocodes - Promocode %q already exists", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgPromocodeExists)

		default:
			h.logger.Error("POST /admin/promocodes - Failed to create promocode: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promocodes - Promocode created: id=%d, name=%q", result.ID, result.Name)

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
