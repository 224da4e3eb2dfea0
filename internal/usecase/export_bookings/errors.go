package export_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном фильтре
	ErrInvalidInput = errors.New("export_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_bookings: internal error")
)
