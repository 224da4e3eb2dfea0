package models

import (
	"fmt"
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
)

// BookingResponse модель бронирования для отдачи наружу
// Включает presentation-поля: display label/style статуса и флаги
// доступности сообщений и контактов
type BookingResponse struct {
	ID              int64
	Reference       string
	TravelerID      int64
	GuideID         int64
	CityID          int64
	BookingDate     time.Time
	StartTime       string
	DurationMinutes int
	Timezone        string
	PartySize       int

	Status           string
	StatusLabel      string
	StatusStyle      string
	MessagingEnabled bool
	ContactVisible   bool

	TourName     string
	TourPrice    float64
	TravelerName string
	GuideName    string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetGuideBookingsRequest запрос расписания гида
type GetGuideBookingsRequest struct {
	GuideID         int64
	UserID          int64 // кто спрашивает
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetGuideBookingsRequest) ToDomainFilter() (domain.GuideBookingsFilter, error) {
	filter := domain.GuideBookingsFilter{
		GuideID:         r.GuideID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.GuideBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetTravelerBookingsRequest запрос истории бронирований путешественника
type GetTravelerBookingsRequest struct {
	TravelerID int64
	UserID     int64
	Status     *string
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64
	CancellationReason string
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	UserID int64
	Status string
}

// AdminSearchRequest запрос поиска бронирований в админке
type AdminSearchRequest struct {
	NameQuery *string
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// ToDomainFilter конвертирует admin запрос в domain фильтр
func (r *AdminSearchRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{
		NameQuery: r.NameQuery,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Limit:     r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.AdminBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// ToDomainBookingStatus валидирует строку и конвертирует в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	switch s {
	case domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusPaid,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusDeclined:
		return s, nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", status)
	}
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	display := domain.StatusDisplayFor(b.Status)

	return &BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		TravelerID:      b.TravelerID,
		GuideID:         b.GuideID,
		CityID:          b.CityID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
		PartySize:       b.PartySize,

		Status:           string(b.Status),
		StatusLabel:      display.Label,
		StatusStyle:      display.Style,
		MessagingEnabled: domain.IsMessagingEnabled(b.Status),
		ContactVisible:   domain.IsContactVisible(b.Status),

		TourName:     b.TourName,
		TourPrice:    b.TourPrice,
		TravelerName: b.TravelerName,
		GuideName:    b.GuideName,
		Notes:        b.Notes,

		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}
