package paymentservice

import "errors"

var (
	// ErrChargeNotFound возвращается, когда платеж по reference не найден
	ErrChargeNotFound = errors.New("charge not found for booking")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceDegraded возвращается при недоступности PaymentService
	// Переводы в статус paid при этом отклоняются и могут быть повторены
	ErrServiceDegraded = errors.New("paymentservice unavailable: verification temporarily impossible")
)
