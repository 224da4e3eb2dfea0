package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PaymentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetChargeByBooking получает платеж по публичному reference бронирования
func (c *Client) GetChargeByBooking(ctx context.Context, bookingReference string) (*Charge, error) {
	url := fmt.Sprintf("%s/internal/charges/by-booking/%s", c.baseURL, bookingReference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrChargeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var charge Charge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &charge, nil
}

// VerifyChargeSettled проверяет, что платеж по бронированию успешно проведен
// При недоступности PaymentService возвращает ErrServiceDegraded:
// перевод бронирования в paid откладывается, а не пропускается без проверки
func (c *Client) VerifyChargeSettled(ctx context.Context, bookingReference string) (*Charge, error) {
	c.log.Info("Verifying charge for booking reference=%s", bookingReference)

	charge, err := c.GetChargeByBooking(ctx, bookingReference)
	if err != nil {
		if errors.Is(err, ErrChargeNotFound) {
			c.log.Info("No charge found for booking reference=%s", bookingReference)
			return nil, err
		}

		c.log.Error("PaymentService unavailable for booking reference=%s: %v", bookingReference, err)
		return nil, fmt.Errorf("%w: reference=%s, error=%v", ErrServiceDegraded, bookingReference, err)
	}

	c.log.Info("Charge %s for booking reference=%s has status=%s", charge.ID, bookingReference, charge.Status)
	return charge, nil
}
