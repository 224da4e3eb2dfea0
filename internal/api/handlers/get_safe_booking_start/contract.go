package get_safe_booking_start

import (
	"context"
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
)

type GuideServiceClient interface {
	GetGuide(ctx context.Context, guideID int64) (*guideservice.Guide, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
