package get_city

import (
	"context"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
)

type GeoRepository interface {
	GetCityBySlug(ctx context.Context, slug string) (*domain.City, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
