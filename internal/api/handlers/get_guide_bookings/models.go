package get_guide_bookings

import (
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

// BookingSummary элемент расписания гида
type BookingSummary struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"reference"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	Timezone     string  `json:"timezone"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	StatusStyle  string  `json:"statusStyle"`
	TourName     string  `json:"tourName"`
	TourPrice    float64 `json:"tourPrice"`
	TravelerName string  `json:"travelerName"`
	PartySize    int     `json:"partySize"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Total    int              `json:"total"`
}

// FromServiceList конвертирует ответ сервиса в HTTP response
func FromServiceList(list *models.BookingListResponse) *BookingListResponse {
	summaries := make([]BookingSummary, 0, len(list.Bookings))
	for _, b := range list.Bookings {
		summaries = append(summaries, BookingSummary{
			ID:           b.ID,
			Reference:    b.Reference,
			BookingDate:  b.BookingDate.Format(domain.DateFormat),
			StartTime:    b.StartTime,
			Timezone:     b.Timezone,
			Status:       b.Status,
			StatusLabel:  b.StatusLabel,
			StatusStyle:  b.StatusStyle,
			TourName:     b.TourName,
			TourPrice:    b.TourPrice,
			TravelerName: b.TravelerName,
			PartySize:    b.PartySize,
		})
	}
	return &BookingListResponse{
		Bookings: summaries,
		Total:    list.Total,
	}
}
