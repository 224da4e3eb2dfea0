package domain

// Default booking values
const (
	DefaultTourDurationMinutes = 180
	DefaultPartySize           = 1
)

// Business validation constants
const (
	MinPartySize                = 1
	MaxPartySize                = 12
	MinTourDurationMinutes      = 30
	MaxTourDurationMinutes      = 720 // a full day tour
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAdvanceBookingDays       = 365
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that no longer occupy the guide's calendar.
// Used when counting schedule conflicts.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusDeclined,
	StatusCompleted,
}

// ActiveStatuses statuses that hold a spot on the guide's calendar
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusPaid,
	StatusConfirmed,
}
