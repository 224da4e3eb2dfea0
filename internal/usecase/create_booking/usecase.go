package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	guideClient "github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
)

// UseCase use case для создания бронирования тура
type UseCase struct {
	bookingRepo  BookingRepository
	guideClient  GuideServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guideClient GuideServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		guideClient:  guideClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Правило "safe booking start": тур не может начинаться раньше, чем
// через 24 часа от текущего момента в таймзоне гида, с округлением
// вверх до целой минуты. Проверка пересечений по расписанию гида
// выполняется в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: traveler=%d, guide=%d, tour=%d, date=%s, time=%s, party=%d",
		req.TravelerID, req.GuideID, req.TourID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем профиль гида
	guide, err := uc.guideClient.GetGuide(ctx, req.GuideID)
	if err != nil {
		if errors.Is(err, guideClient.ErrGuideNotFound) {
			uc.logger.Warn("CreateBooking: guide id=%d not found", req.GuideID)
			return nil, ErrGuideNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guide id=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: failed to get guide: %v", ErrInternal, err)
	}

	if !guide.Active {
		uc.logger.Warn("CreateBooking: guide id=%d is not active", req.GuideID)
		return nil, ErrGuideInactive
	}

	// 3. Получаем тур
	tour, err := uc.guideClient.GetTour(ctx, req.GuideID, req.TourID)
	if err != nil {
		if errors.Is(err, guideClient.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	if err := validateTour(tour, req.GuideID, req.PartySize); err != nil {
		uc.logger.Warn("CreateBooking: tour validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем 24-часовой lead time в таймзоне гида
	safeStart, err := domain.SafeBookingStart(now, guide.Timezone)
	if err != nil {
		uc.logger.Warn("CreateBooking: guide id=%d has unknown timezone %q", req.GuideID, guide.Timezone)
		return nil, fmt.Errorf("%w: %v", ErrUnknownTimezone, err)
	}

	loc, err := time.LoadLocation(guide.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTimezone, err)
	}

	if domain.IsBeforeSafeBookingStart(req.Date, req.StartTime, safeStart, loc) {
		uc.logger.Warn("CreateBooking: requested %s %s is before safe start %s",
			req.Date.Format(domain.DateFormat), req.StartTime, safeStart.Format(time.RFC3339))
		return nil, ErrTooSoon
	}

	duration := tour.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultTourDurationMinutes
	}

	var result *domain.Booking

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.GuideBookingsFilter{
			GuideID:         req.GuideID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByGuideWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get guide bookings: %v", err)
			return fmt.Errorf("%w: failed to get guide bookings: %v", ErrInternal, err)
		}

		overlapping, err := countOverlappingBookings(req.StartTime, duration, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		// Гид ведет один тур одновременно
		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: guide id=%d has %d overlapping bookings on %s",
				req.GuideID, overlapping, req.Date.Format(domain.DateFormat))
			return ErrScheduleConflict
		}

		booking := &domain.Booking{
			Reference:       uuid.NewString(),
			TravelerID:      req.TravelerID,
			GuideID:         req.GuideID,
			CityID:          guide.CityID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Timezone:        guide.Timezone,
			PartySize:       req.PartySize,
			Status:          domain.StatusPending,
			// Денормализация для истории и выгрузок
			TourName:     tour.Name,
			TourPrice:    getTourPrice(tour),
			TravelerName: req.TravelerName,
			GuideName:    guide.Name,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s", result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		TravelerID:      result.TravelerID,
		GuideID:         result.GuideID,
		CityID:          result.CityID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Timezone:        result.Timezone,
		PartySize:       result.PartySize,
		Status:          string(result.Status),
		TourName:        result.TourName,
		TourPrice:       result.TourPrice,
		TravelerName:    result.TravelerName,
		GuideName:       result.GuideName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
