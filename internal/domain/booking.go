package domain

import (
	"time"

	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

// BookingStatus represents the status of a tour booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusPaid      BookingStatus = "paid"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusDeclined  BookingStatus = "declined"
)

// Legacy status aliases still present on historical rows.
// Recognized by the contact-visibility gate only.
const (
	StatusApprovedPendingPayment BookingStatus = "approved_pending_payment"
	StatusApproved               BookingStatus = "approved"
	StatusAwaitingPayment        BookingStatus = "awaiting_payment"
)

// Booking represents a tour reservation linking a traveler and a guide
type Booking struct {
	ID         int64
	Reference  string // public UUID, used in URLs and payment charge metadata
	TravelerID int64
	GuideID    int64
	CityID     int64

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Timezone        string // IANA zone of the guide at booking time
	PartySize       int
	Status          BookingStatus

	// Denormalized data for history and admin exports
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

// IsActive returns true if the booking still occupies the guide's calendar
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled &&
		b.Status != StatusDeclined &&
		b.Status != StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending ||
		b.Status == StatusAccepted ||
		b.Status == StatusPaid ||
		b.Status == StatusConfirmed
}

// IsParticipant returns true if userID is the traveler or the guide on this booking
func (b *Booking) IsParticipant(userID int64) bool {
	return b.TravelerID == userID || b.GuideID == userID
}

// IsMessagingEnabled reports whether in-app messaging is open for a booking
// in the given status. Messaging opens only once the booking is confirmed
// and stays open after completion. Total over arbitrary status strings.
func IsMessagingEnabled(status BookingStatus) bool {
	return status == StatusConfirmed || status == StatusCompleted
}

// IsContactVisible reports whether the counterparty's contact details are
// shown for a booking in the given status. Intentionally a wider set than
// IsMessagingEnabled (contacts appear as soon as the guide accepts, before
// payment settles); the two sets must not be merged.
func IsContactVisible(status BookingStatus) bool {
	switch status {
	case StatusAccepted,
		StatusApprovedPendingPayment,
		StatusApproved,
		StatusAwaitingPayment,
		StatusConfirmed,
		StatusCompleted,
		StatusPaid:
		return true
	default:
		return false
	}
}

// statusTransitions allowed booking lifecycle transitions
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusDeclined, StatusCancelled},
	StatusAccepted:  {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusDeclined:  {},
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// GuideBookingsFilter filter for listing a guide's bookings
type GuideBookingsFilter struct {
	GuideID         int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}

// AdminBookingsFilter filter for admin search and CSV export
type AdminBookingsFilter struct {
	NameQuery *string // matches traveler or guide name, case-insensitive substring
	Status    *BookingStatus
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
