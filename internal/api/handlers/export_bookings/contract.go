package export_bookings

import (
	"context"

	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/export_bookings"
)

type ExportUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
