package create_booking

import (
	"fmt"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TravelerID <= 0 {
		return fmt.Errorf("%w: travelerID must be positive", ErrInvalidInput)
	}

	if req.GuideID <= 0 {
		return fmt.Errorf("%w: guideID must be positive", ErrInvalidInput)
	}

	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTour проверяет, что тур активен, принадлежит гиду и
// вмещает запрошенную группу
func validateTour(tour *guideservice.Tour, guideID int64, partySize int) error {
	if tour.GuideID != guideID {
		return ErrTourNotFound
	}

	if !tour.Active {
		return ErrTourInactive
	}

	if tour.MaxPartySize > 0 && partySize > tour.MaxPartySize {
		return fmt.Errorf("%w: requested %d, tour limit %d", ErrPartySizeTooLarge, partySize, tour.MaxPartySize)
	}

	return nil
}

// countOverlappingBookings подсчитывает активные бронирования гида,
// пересекающиеся с запрошенным слотом
// Граничные случаи (конец одного равен началу другого) пересечением не считаются
func countOverlappingBookings(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (int, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			count++
		}
	}

	return count, nil
}

// getTourPrice извлекает цену тура
// Если цена не указана (по запросу), возвращает 0.0
func getTourPrice(tour *guideservice.Tour) float64 {
	if tour.Price == nil {
		return 0.0
	}
	return *tour.Price
}
