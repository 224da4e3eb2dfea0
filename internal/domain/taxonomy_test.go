package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDisplayFor(t *testing.T) {
	tests := []struct {
		name      string
		status    BookingStatus
		wantLabel string
		wantStyle string
	}{
		{name: "pending", status: StatusPending, wantLabel: "Pending", wantStyle: "badge-amber"},
		{name: "accepted", status: StatusAccepted, wantLabel: "Accepted", wantStyle: "badge-blue"},
		{name: "paid", status: StatusPaid, wantLabel: "Paid", wantStyle: "badge-teal"},
		{name: "confirmed", status: StatusConfirmed, wantLabel: "Confirmed", wantStyle: "badge-green"},
		{name: "completed", status: StatusCompleted, wantLabel: "Completed", wantStyle: "badge-gray"},
		{name: "cancelled", status: StatusCancelled, wantLabel: "Cancelled", wantStyle: "badge-red"},
		{name: "declined", status: StatusDeclined, wantLabel: "Declined", wantStyle: "badge-red"},
		{name: "legacy status falls back to capitalized raw value", status: StatusAwaitingPayment, wantLabel: "Awaiting_payment", wantStyle: "badge-neutral"},
		{name: "unknown status is capitalized", status: "refunded", wantLabel: "Refunded", wantStyle: "badge-neutral"},
		{name: "empty status stays empty", status: "", wantLabel: "", wantStyle: "badge-neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := StatusDisplayFor(tt.status)
			assert.Equal(t, tt.wantLabel, display.Label)
			assert.Equal(t, tt.wantStyle, display.Style)
		})
	}
}
