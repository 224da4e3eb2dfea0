package geo

import "errors"

var (
	// ErrCountryNotFound возвращается, когда страна не найдена
	ErrCountryNotFound = errors.New("geo.repository: country not found")

	// ErrCityNotFound возвращается, когда город не найден
	ErrCityNotFound = errors.New("geo.repository: city not found")

	// ErrDuplicateSlug возвращается при нарушении уникальности slug города
	// Сигнал для резолвера попробовать следующий кандидат slug-а
	ErrDuplicateSlug = errors.New("geo.repository: city slug already taken")

	// ErrDuplicateCountry возвращается при нарушении уникальности ISO кода страны
	ErrDuplicateCountry = errors.New("geo.repository: country code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("geo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("geo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("geo.repository: failed to scan row")
)
