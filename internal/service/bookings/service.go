package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	bookingRepo "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/booking"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/paymentservice"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями туров
type Service struct {
	bookingRepo   BookingRepository
	paymentClient PaymentServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentClient PaymentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только участникам бронирования (путешественнику и гиду)
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetTravelerBookings получает историю бронирований путешественника
// Путешественник видит только свою историю
func (s *Service) GetTravelerBookings(ctx context.Context, req *models.GetTravelerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTravelerBookings: fetching bookings for traveler=%d, status=%v", req.TravelerID, req.Status)

	if req.TravelerID != req.UserID {
		s.logger.Warn("GetTravelerBookings: access denied for user=%d to traveler=%d history", req.UserID, req.TravelerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetTravelerBookings: invalid status=%s for traveler=%d", *req.Status, req.TravelerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByTravelerID(ctx, req.TravelerID, domainStatus)
	if err != nil {
		s.logger.Error("GetTravelerBookings: repository error for traveler=%d: %v", req.TravelerID, err)
		return nil, fmt.Errorf("%w: GetTravelerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTravelerBookings: fetched %d bookings for traveler=%d", len(bookings), req.TravelerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetGuideBookings получает расписание гида с фильтрацией по периоду и статусу
// Доступно только самому гиду
func (s *Service) GetGuideBookings(ctx context.Context, req *models.GetGuideBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuideBookings: fetching bookings for guide=%d, user=%d", req.GuideID, req.UserID)

	if req.GuideID != req.UserID {
		s.logger.Warn("GetGuideBookings: access denied for user=%d to guide=%d schedule", req.UserID, req.GuideID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetGuideBookings: invalid filter for guide=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByGuideWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetGuideBookings: repository error for guide=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: GetGuideBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuideBookings: fetched %d bookings for guide=%d", len(bookings), req.GuideID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить может любой участник бронирования, пока статус это допускает
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.IsParticipant(req.UserID) {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отклонение гидом pending заявки фиксируется как declined,
	// все остальные отмены - как cancelled
	cancelStatus := domain.StatusCancelled
	if req.UserID == booking.GuideID && booking.Status == domain.StatusPending {
		cancelStatus = domain.StatusDeclined
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus переводит бронирование в новый статус
// Переходы ограничены таблицей жизненного цикла; переход в paid
// дополнительно требует подтвержденного платежа в PaymentService
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Статусами управляет гид (accept/decline/confirm/complete);
	// перевод в paid приходит от вебхука от имени путешественника
	if !booking.IsParticipant(req.UserID) {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if newStatus == domain.StatusPaid {
		if err := s.verifyPayment(ctx, booking); err != nil {
			return err
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", bookingID, booking.Status, newStatus)
	return nil
}

// AdminSearch ищет бронирования по фильтру админки
// Права проверяет admin middleware, здесь доступ не ограничивается
func (s *Service) AdminSearch(ctx context.Context, req *models.AdminSearchRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("AdminSearch: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.SearchAdmin(ctx, filter)
	if err != nil {
		s.logger.Error("AdminSearch: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminSearch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminSearch: found %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) verifyPayment(ctx context.Context, booking *domain.Booking) error {
	charge, err := s.paymentClient.VerifyChargeSettled(ctx, booking.Reference)
	if err != nil {
		if errors.Is(err, paymentservice.ErrChargeNotFound) {
			s.logger.Warn("verifyPayment: no charge for booking id=%d", booking.ID)
			return ErrPaymentNotSettled
		}
		if errors.Is(err, paymentservice.ErrServiceDegraded) {
			s.logger.Error("verifyPayment: payment service degraded for booking id=%d: %v", booking.ID, err)
			return ErrPaymentUnavailable
		}
		s.logger.Error("verifyPayment: payment client error for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: verifyPayment - payment client error: %v", ErrInternal, err)
	}

	if !charge.IsSettled() {
		s.logger.Warn("verifyPayment: charge %s for booking id=%d has status=%s",
			charge.ID, booking.ID, charge.Status)
		return ErrPaymentNotSettled
	}

	return nil
}
