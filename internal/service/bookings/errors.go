package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается при неизвестном статусе во входных данных
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrPaymentNotSettled возвращается при переводе в paid без успешного платежа
	ErrPaymentNotSettled = errors.New("payment is not settled for this booking")

	// ErrPaymentUnavailable возвращается, когда платежный сервис недоступен
	// и проверку платежа нужно повторить позже
	ErrPaymentUnavailable = errors.New("payment service unavailable, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
