package generate_availability

import (
	"context"

	generateAvailability "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/generate_availability"
)

type GenerateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *generateAvailability.Request) (*generateAvailability.Response, error)
	ExecuteDelete(ctx context.Context, req *generateAvailability.DeleteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
