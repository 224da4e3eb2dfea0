package resolve_city

import "errors"

var (
	// ErrValidation возвращается при отсутствии обязательных полей
	// До обращения к хранилищу
	ErrValidation = errors.New("resolve_city: validation error")

	// ErrCountryBlocked возвращается для стран из блок-листа ISO кодов
	ErrCountryBlocked = errors.New("resolve_city: country is blocked")

	// ErrCityBlocked возвращается для городов, имя которых попадает
	// под блок-лист ключевых слов
	ErrCityBlocked = errors.New("resolve_city: city name is blocked")

	// ErrCountryNotSupported возвращается для стран с выключенным
	// флагом supported
	ErrCountryNotSupported = errors.New("resolve_city: country is not supported")

	// ErrSlugExhausted возвращается, когда все кандидаты slug-а заняты
	ErrSlugExhausted = errors.New("resolve_city: could not find a free slug")

	// ErrPersistence возвращается при ошибках вставки/чтения
	ErrPersistence = errors.New("resolve_city: persistence error")
)
