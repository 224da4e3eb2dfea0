package admin_search_bookings

import (
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

// BookingRow строка результата админ-поиска.
// Полнее, чем публичные списки: видны оба участника и таймстемпы.
type BookingRow struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"reference"`
	TravelerID   int64   `json:"travelerId"`
	TravelerName string  `json:"travelerName"`
	GuideID      int64   `json:"guideId"`
	GuideName    string  `json:"guideName"`
	TourName     string  `json:"tourName"`
	TourPrice    float64 `json:"tourPrice"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	Timezone     string  `json:"timezone"`
	PartySize    int     `json:"partySize"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Bookings []BookingRow `json:"bookings"`
	Total    int          `json:"total"`
}

// FromServiceList конвертирует ответ сервиса в HTTP response
func FromServiceList(list *models.BookingListResponse) *SearchResponse {
	rows := make([]BookingRow, 0, len(list.Bookings))
	for _, b := range list.Bookings {
		rows = append(rows, BookingRow{
			ID:           b.ID,
			Reference:    b.Reference,
			TravelerID:   b.TravelerID,
			TravelerName: b.TravelerName,
			GuideID:      b.GuideID,
			GuideName:    b.GuideName,
			TourName:     b.TourName,
			TourPrice:    b.TourPrice,
			BookingDate:  b.BookingDate.Format(domain.DateFormat),
			StartTime:    b.StartTime,
			Timezone:     b.Timezone,
			PartySize:    b.PartySize,
			Status:       b.Status,
			StatusLabel:  b.StatusLabel,
			CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:    b.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &SearchResponse{
		Bookings: rows,
		Total:    list.Total,
	}
}
