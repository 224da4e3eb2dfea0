package domain

import "strings"

// StatusDisplay is the presentation mapping for a booking status:
// a human label and a fixed style class for clients to render badges with.
type StatusDisplay struct {
	Label string
	Style string
}

// statusDisplays fixed display table for the known statuses
var statusDisplays = map[BookingStatus]StatusDisplay{
	StatusPending:   {Label: "Pending", Style: "badge-amber"},
	StatusAccepted:  {Label: "Accepted", Style: "badge-blue"},
	StatusPaid:      {Label: "Paid", Style: "badge-teal"},
	StatusConfirmed: {Label: "Confirmed", Style: "badge-green"},
	StatusCompleted: {Label: "Completed", Style: "badge-gray"},
	StatusCancelled: {Label: "Cancelled", Style: "badge-red"},
	StatusDeclined:  {Label: "Declined", Style: "badge-red"},
}

// neutralStyle fallback style for statuses outside the display table
const neutralStyle = "badge-neutral"

// StatusDisplayFor returns the display label and style for a status.
// Unknown statuses get a capitalized copy of the raw value and the neutral
// style. Never fails.
func StatusDisplayFor(status BookingStatus) StatusDisplay {
	if display, ok := statusDisplays[status]; ok {
		return display
	}
	return StatusDisplay{
		Label: capitalize(string(status)),
		Style: neutralStyle,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
