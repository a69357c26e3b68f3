package register_payment_event

import (
	"context"

	registerPayment "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/register_payment"
)

type RegisterPaymentUseCase interface {
	Execute(ctx context.Context, req *registerPayment.Request) (*registerPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
