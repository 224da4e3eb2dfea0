package resolve_city

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	geoRepo "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/geo"
)

// UseCase идемпотентный find-or-create резолвер города и страны.
// Используется при онбординге гидов: страна и город создаются лениво
// при первом упоминании
type UseCase struct {
	geoRepo GeoRepository
	logger  Logger
}

// NewUseCase создает новый экземпляр резолвера
func NewUseCase(geoRepo GeoRepository, logger Logger) *UseCase {
	return &UseCase{
		geoRepo: geoRepo,
		logger:  logger,
	}
}

// Execute резолвит город: находит существующий или создает страну и
// город. Совпадение по имени ищется без учета регистра в рамках страны.
// У найденного города при необходимости бэкофилятся денормализованные
// код и название страны (best-effort, ошибка бэкофила не фатальна)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.CityName) == "" || strings.TrimSpace(req.CountryCode) == "" {
		uc.logger.Warn("ResolveCity: missing required fields (city=%q, country=%q)", req.CityName, req.CountryCode)
		return nil, fmt.Errorf("%w: City name and country code are required", ErrValidation)
	}

	isoCode := strings.ToUpper(strings.TrimSpace(req.CountryCode))
	cityName := strings.TrimSpace(req.CityName)

	country, err := uc.resolveCountry(ctx, isoCode, req.CountryName)
	if err != nil {
		return nil, err
	}

	if !country.Supported {
		uc.logger.Warn("ResolveCity: country %s is not supported", isoCode)
		return nil, fmt.Errorf("%w: %s", ErrCountryNotSupported, isoCode)
	}

	// Поиск существующего города (точное совпадение имени без учета регистра)
	existing, err := uc.geoRepo.GetCityByName(ctx, country.ID, cityName)
	if err == nil {
		uc.backfillCountryInfo(ctx, existing, country)
		uc.logger.Info("ResolveCity: found existing city id=%d slug=%s", existing.ID, existing.Slug)
		return &Response{CityID: existing.ID, Slug: existing.Slug, Created: false}, nil
	}
	if !errors.Is(err, geoRepo.ErrCityNotFound) {
		uc.logger.Error("ResolveCity: city lookup failed for %q: %v", cityName, err)
		return nil, fmt.Errorf("%w: city lookup failed: %v", ErrPersistence, err)
	}

	return uc.createCity(ctx, country, cityName)
}

// ExecuteOnboarding вариант для онбординга гидов: дополнительно
// отклоняет страны из блок-листа ISO кодов и города, имя которых
// попадает под блок-лист ключевых слов. Проверки выполняются до
// любого обращения к хранилищу
func (uc *UseCase) ExecuteOnboarding(ctx context.Context, req *Request) (*Response, error) {
	if isCountryBlocked(req.CountryCode) {
		uc.logger.Warn("ResolveCity: blocked country code %q", req.CountryCode)
		return nil, fmt.Errorf("%w: %s", ErrCountryBlocked, strings.ToUpper(req.CountryCode))
	}

	if isCityNameBlocked(req.CityName) {
		uc.logger.Warn("ResolveCity: blocked city name %q", req.CityName)
		return nil, fmt.Errorf("%w: %s", ErrCityBlocked, req.CityName)
	}

	return uc.Execute(ctx, req)
}

// resolveCountry находит страну по ISO коду или создает новую
// Гонка двух конкурирующих вставок разрешается через уникальное
// ограничение на код: проигравший получает ErrDuplicateCountry и
// повторяет lookup
func (uc *UseCase) resolveCountry(ctx context.Context, isoCode, countryName string) (*domain.Country, error) {
	country, err := uc.geoRepo.GetCountryByCode(ctx, isoCode)
	if err == nil {
		return country, nil
	}
	if !errors.Is(err, geoRepo.ErrCountryNotFound) {
		uc.logger.Error("ResolveCity: country lookup failed for %s: %v", isoCode, err)
		return nil, fmt.Errorf("%w: country lookup failed: %v", ErrPersistence, err)
	}

	name := strings.TrimSpace(countryName)
	if name == "" {
		name = isoCode
	}

	created, err := uc.geoRepo.CreateCountry(ctx, &domain.Country{
		Code:      isoCode,
		Name:      name,
		Supported: true,
	})
	if err == nil {
		uc.logger.Info("ResolveCity: created country id=%d code=%s", created.ID, created.Code)
		return created, nil
	}

	if errors.Is(err, geoRepo.ErrDuplicateCountry) {
		return uc.geoRepo.GetCountryByCode(ctx, isoCode)
	}

	uc.logger.Error("ResolveCity: failed to create country %q (%s): %v", name, isoCode, err)
	return nil, fmt.Errorf("%w: failed to create country %q (%s): %v", ErrPersistence, name, isoCode, err)
}

// createCity создает город, подбирая свободный slug
// Уникальность обеспечивается ограничением БД: на ErrDuplicateSlug
// пробуется следующий кандидат (base, base-iso, base-iso-2, ...) -
// без предварительной проверки занятости, поэтому гонки двух
// онбордингов с одинаковым именем разрешаются корректно
func (uc *UseCase) createCity(ctx context.Context, country *domain.Country, cityName string) (*Response, error) {
	base := SlugFromName(cityName)
	if base == "" {
		return nil, fmt.Errorf("%w: city name %q produces an empty slug", ErrValidation, cityName)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := slugCandidate(base, country.Code, attempt)

		city := &domain.City{
			CountryID:   country.ID,
			Name:        cityName,
			Slug:        candidate,
			CountryCode: country.Code,
			CountryName: country.Name,
			Active:      true,
		}

		created, err := uc.geoRepo.CreateCity(ctx, city)
		if err == nil {
			uc.logger.Info("ResolveCity: created city id=%d slug=%s (attempt %d)", created.ID, created.Slug, attempt+1)
			return &Response{CityID: created.ID, Slug: created.Slug, Created: true}, nil
		}

		if errors.Is(err, geoRepo.ErrDuplicateSlug) {
			continue
		}

		uc.logger.Error("ResolveCity: failed to create city %q: %v", cityName, err)
		return nil, fmt.Errorf("%w: failed to create city %q: %v", ErrPersistence, cityName, err)
	}

	uc.logger.Error("ResolveCity: exhausted %d slug candidates for %q", maxSlugAttempts, cityName)
	return nil, fmt.Errorf("%w: %q after %d attempts", ErrSlugExhausted, base, maxSlugAttempts)
}

// backfillCountryInfo бэкофилит денормализованные поля страны на городах,
// созданных до денормализации. Ошибка не прерывает резолв
func (uc *UseCase) backfillCountryInfo(ctx context.Context, city *domain.City, country *domain.Country) {
	if !city.NeedsCountryBackfill() {
		return
	}

	if err := uc.geoRepo.UpdateCityCountryInfo(ctx, city.ID, country.Code, country.Name); err != nil {
		uc.logger.Warn("ResolveCity: backfill failed for city id=%d: %v", city.ID, err)
	}
}
