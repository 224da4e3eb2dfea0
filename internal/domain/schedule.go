package domain

import (
	"fmt"
	"time"

	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

// MinBookingLead is the minimum lead time between "now" and the start of a
// new booking, measured in the guide's local timezone.
const MinBookingLead = 24 * time.Hour

// SafeBookingStart returns the earliest instant a new booking may start for
// a guide in the given IANA timezone: now projected into the guide's zone,
// plus the 24-hour lead, rounded up to the next whole minute. An instant
// already on an exact minute boundary is returned unchanged; only
// strictly-past-the-boundary instants are rounded up.
func SafeBookingStart(now time.Time, guideTimezone string) (time.Time, error) {
	loc, err := time.LoadLocation(guideTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown guide timezone %q: %v", guideTimezone, err)
	}

	start := now.In(loc).Add(MinBookingLead)

	if start.Second() != 0 || start.Nanosecond() != 0 {
		start = start.Truncate(time.Minute).Add(time.Minute)
	}

	return start, nil
}

// IsBeforeSafeBookingStart reports whether the requested date + "HH:MM"
// start time, interpreted in loc, falls before the precomputed safe start.
// An empty start time is never "before" - the caller's required-field
// validation owns that case.
func IsBeforeSafeBookingStart(date time.Time, startTime types.TimeString, safeStart time.Time, loc *time.Location) bool {
	if startTime.IsZero() {
		return false
	}

	selected, err := startTime.At(date, loc)
	if err != nil {
		return false
	}

	return selected.Before(safeStart)
}
