package paymentservice

// ChargeStatus статус платежа во внешнем платежном сервисе
type ChargeStatus string

const (
	ChargeSucceeded ChargeStatus = "succeeded"
	ChargePending   ChargeStatus = "pending"
	ChargeFailed    ChargeStatus = "failed"
	ChargeRefunded  ChargeStatus = "refunded"
)

// Charge платеж, привязанный к бронированию через его reference
type Charge struct {
	ID               string       `json:"id"`
	BookingReference string       `json:"booking_reference"`
	Amount           float64      `json:"amount"`
	Currency         string       `json:"currency"`
	Status           ChargeStatus `json:"status"`
}

// IsSettled возвращает true, если платеж успешно проведен
func (c *Charge) IsSettled() bool {
	return c.Status == ChargeSucceeded
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
