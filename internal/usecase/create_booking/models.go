package create_booking

import (
	"time"

	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TravelerID   int64
	TravelerName string
	GuideID      int64
	TourID       int64
	Date         time.Time        // дата тура (без времени)
	StartTime    types.TimeString // время начала в таймзоне гида
	PartySize    int
	Notes        *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	Reference       string
	TravelerID      int64
	GuideID         int64
	CityID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Timezone        string
	PartySize       int
	Status          string

	// Денормализованные данные
	TourName     string
	TourPrice    float64
	TravelerName string
	GuideName    string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
