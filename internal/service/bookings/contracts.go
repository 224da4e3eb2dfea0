package bookings

import (
	"context"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/paymentservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTravelerID(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByGuideWithFilter(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error)
	SearchAdmin(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	VerifyChargeSettled(ctx context.Context, bookingReference string) (*paymentservice.Charge, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
