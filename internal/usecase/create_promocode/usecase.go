package create_promocode

import (
	"context"
	"errors"
	"fmt"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
)

// UseCase use case создания промокода
type UseCase struct {
	promocodeRepo PromocodeRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promocodeRepo PromocodeRepository, logger Logger) *UseCase {
	return &UseCase{
		promocodeRepo: promocodeRepo,
		logger:        logger,
	}
}

// Execute выполняет use case создания промокода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePromocode: name=%q, factor=%s, limit=%d", req.Name, req.Factor, req.LimitOfUses)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePromocode: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем промокод
	created, err := uc.promocodeRepo.Create(ctx, &domain.Promocode{
		Name:        req.Name,
		UseFrom:     req.UseFrom,
		UseTo:       req.UseTo,
		BookingFrom: req.BookingFrom,
		BookingTo:   req.BookingTo,
		Factor:      req.Factor,
		LimitOfUses: req.LimitOfUses,
	})
	if err != nil {
		if errors.Is(err, promocodeRepo.ErrPromocodeExists) {
			uc.logger.Warn("CreatePromocode: name=%q already exists", req.Name)
			return nil, ErrPromocodeExists
		}
		uc.logger.Error("CreatePromocode: failed to create promocode %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: failed to create promocode: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePromocode: created promocode id=%d, name=%q", created.ID, created.Name)

	return &Response{
		ID:           created.ID,
		Name:         created.Name,
		UseFrom:      created.UseFrom,
		UseTo:        created.UseTo,
		BookingFrom:  created.BookingFrom,
		BookingTo:    created.BookingTo,
		Factor:       created.Factor,
		LimitOfUses:  created.LimitOfUses,
		NumberOfUses: created.NumberOfUses,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxPromocodeNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.UseFrom.IsZero() || req.UseTo.IsZero() || req.UseFrom.After(req.UseTo) {
		return fmt.Errorf("%w: invalid use window", ErrInvalidInput)
	}
	if req.BookingFrom.IsZero() || req.BookingTo.IsZero() || req.BookingFrom.After(req.BookingTo) {
		return fmt.Errorf("%w: invalid booking window", ErrInvalidInput)
	}
	if req.Factor.IsNegative() {
		return fmt.Errorf("%w: factor must not be negative", ErrInvalidInput)
	}
	if req.LimitOfUses <= 0 {
		return fmt.Errorf("%w: limitOfUses must be positive", ErrInvalidInput)
	}
	return nil
}
