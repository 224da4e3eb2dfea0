package resolve_city

import (
	"context"

	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/resolve_city"
)

type ResolveCityUseCase interface {
	ExecuteOnboarding(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
