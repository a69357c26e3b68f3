package create_promocode

import (
	"context"

	createPromocode "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_promocode"
)

type CreatePromocodeUseCase interface {
	Execute(ctx context.Context, req *createPromocode.Request) (*createPromocode.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
