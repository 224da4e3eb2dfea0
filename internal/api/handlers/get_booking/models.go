package get_booking

import (
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
// Включает display-поля статуса и флаги доступности сообщений/контактов
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	TravelerID         int64   `json:"travelerId"`
	GuideID            int64   `json:"guideId"`
	CityID             int64   `json:"cityId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Timezone           string  `json:"timezone"`
	PartySize          int     `json:"partySize"`
	Status             string  `json:"status"`
	StatusLabel        string  `json:"statusLabel"`
	StatusStyle        string  `json:"statusStyle"`
	MessagingEnabled   bool    `json:"messagingEnabled"`
	ContactVisible     bool    `json:"contactVisible"`
	TourName           string  `json:"tourName"`
	TourPrice          float64 `json:"tourPrice"`
	TravelerName       string  `json:"travelerName"`
	GuideName          string  `json:"guideName"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		TravelerID:         resp.TravelerID,
		GuideID:            resp.GuideID,
		CityID:             resp.CityID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime,
		DurationMinutes:    resp.DurationMinutes,
		Timezone:           resp.Timezone,
		PartySize:          resp.PartySize,
		Status:             resp.Status,
		StatusLabel:        resp.StatusLabel,
		StatusStyle:        resp.StatusStyle,
		MessagingEnabled:   resp.MessagingEnabled,
		ContactVisible:     resp.ContactVisible,
		TourName:           resp.TourName,
		TourPrice:          resp.TourPrice,
		TravelerName:       resp.TravelerName,
		GuideName:          resp.GuideName,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
