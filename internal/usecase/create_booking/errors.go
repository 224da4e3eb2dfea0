package create_booking

import "errors"

var (
	// ErrGuideNotFound возвращается, когда гид не найден
	ErrGuideNotFound = errors.New("create_booking: guide not found")

	// ErrGuideInactive возвращается, когда гид приостановил работу
	ErrGuideInactive = errors.New("create_booking: guide is not active")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("create_booking: tour not found")

	// ErrTourInactive возвращается, когда тур снят с публикации
	ErrTourInactive = errors.New("create_booking: tour is not active")

	// ErrUnknownTimezone возвращается при неизвестной таймзоне гида
	ErrUnknownTimezone = errors.New("create_booking: unknown guide timezone")

	// ErrTooSoon возвращается, когда запрошенное время нарушает
	// 24-часовой lead time в таймзоне гида
	ErrTooSoon = errors.New("create_booking: start time is before the safe booking start")

	// ErrScheduleConflict возвращается при пересечении с активным
	// бронированием в расписании гида
	ErrScheduleConflict = errors.New("create_booking: guide schedule conflict")

	// ErrPartySizeTooLarge возвращается при превышении лимита участников тура
	ErrPartySizeTooLarge = errors.New("create_booking: party size exceeds tour limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
