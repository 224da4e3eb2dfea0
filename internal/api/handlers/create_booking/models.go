package create_booking

import (
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	createBooking "github.com/rainbowtours/RTG-BookingService/internal/usecase/create_booking"
	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TravelerName string  `json:"travelerName"`
	GuideID      int64   `json:"guideId"`
	TourID       int64   `json:"tourId"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	PartySize    int     `json:"partySize"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	TravelerID      int64   `json:"travelerId"`
	GuideID         int64   `json:"guideId"`
	CityID          int64   `json:"cityId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Timezone        string  `json:"timezone"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	TourName        string  `json:"tourName"`
	TourPrice       float64 `json:"tourPrice"`
	TravelerName    string  `json:"travelerName"`
	GuideName       string  `json:"guideName"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(travelerID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	partySize := r.PartySize
	if partySize == 0 {
		partySize = domain.DefaultPartySize
	}

	return &createBooking.Request{
		TravelerID:   travelerID,
		TravelerName: r.TravelerName,
		GuideID:      r.GuideID,
		TourID:       r.TourID,
		Date:         bookingDate,
		StartTime:    startTime,
		PartySize:    partySize,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		TravelerID:      resp.TravelerID,
		GuideID:         resp.GuideID,
		CityID:          resp.CityID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Timezone:        resp.Timezone,
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		TourName:        resp.TourName,
		TourPrice:       resp.TourPrice,
		TravelerName:    resp.TravelerName,
		GuideName:       resp.GuideName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
