package resolve_city

import (
	"context"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
)

// GeoRepository интерфейс гео-репозитория
type GeoRepository interface {
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	GetCityByName(ctx context.Context, countryID int64, name string) (*domain.City, error)
	CreateCity(ctx context.Context, city *domain.City) (*domain.City, error)
	UpdateCityCountryInfo(ctx context.Context, cityID int64, countryCode, countryName string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
