package get_traveler_bookings

import (
	"context"

	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetTravelerBookings(ctx context.Context, req *models.GetTravelerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
