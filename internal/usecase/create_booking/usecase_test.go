package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
	"github.com/rainbowtours/RTG-BookingService/pkg/ptr"
	"github.com/rainbowtours/RTG-BookingService/pkg/types"
)

type mockBookingRepo struct {
	create               func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getByGuideWithFilter func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, booking)
}

func (m *mockBookingRepo) GetByGuideWithFilter(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
	return m.getByGuideWithFilter(ctx, filter)
}

type mockGuideClient struct {
	getGuide func(ctx context.Context, guideID int64) (*guideservice.Guide, error)
	getTour  func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error)
}

func (m *mockGuideClient) GetGuide(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
	return m.getGuide(ctx, guideID)
}

func (m *mockGuideClient) GetTour(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
	return m.getTour(ctx, guideID, tourID)
}

// passthroughTxManager выполняет fn без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeGuide() *guideservice.Guide {
	return &guideservice.Guide{
		ID:       2,
		Name:     "Ana Martins",
		CityID:   5,
		Timezone: "UTC",
		Active:   true,
	}
}

func activeTour() *guideservice.Tour {
	return &guideservice.Tour{
		ID:              3,
		GuideID:         2,
		Name:            "Old Town Walk",
		Price:           ptr.Ptr(45.0),
		DurationMinutes: 120,
		MaxPartySize:    8,
		Active:          true,
	}
}

func validRequest() *Request {
	return &Request{
		TravelerID:   1,
		TravelerName: "Sam Carter",
		GuideID:      2,
		TourID:       3,
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "14:00",
		PartySize:    2,
	}
}

func newTestUseCase(repo *mockBookingRepo, client *mockGuideClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var stored *domain.Booking
	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			assert.Equal(t, int64(2), filter.GuideID)
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.True(t, filter.StartDate.Equal(*filter.EndDate), "conflict check is per single day")
			return nil, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			stored = booking
			out := *booking
			out.ID = 77
			return &out, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Old Town Walk", resp.TourName)
	assert.Equal(t, 45.0, resp.TourPrice)

	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.Reference, "a public reference must be generated")
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, int64(5), stored.CityID, "city comes from the guide profile")
	assert.Equal(t, "UTC", stored.Timezone)
	assert.Equal(t, 120, stored.DurationMinutes)
	assert.Equal(t, "Ana Martins", stored.GuideName)
	assert.Equal(t, "Sam Carter", stored.TravelerName)
}

func TestExecute_RejectsStartBeforeSafeBookingStart(t *testing.T) {
	// now + 24h = 2024-01-10 14:00:00, запрошенное время ровно на границе
	// допустимо, на минуту раньше - нет
	now := time.Date(2024, 1, 9, 14, 0, 0, 0, time.UTC)

	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			out := *booking
			out.ID = 1
			return &out, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	tooSoon := validRequest()
	tooSoon.StartTime = "13:59"
	_, err := uc.Execute(context.Background(), tooSoon)
	assert.ErrorIs(t, err, ErrTooSoon)

	onBoundary := validRequest()
	onBoundary.StartTime = "14:00"
	_, err = uc.Execute(context.Background(), onBoundary)
	assert.NoError(t, err, "start exactly at the safe boundary is allowed")
}

func TestExecute_ScheduleConflict(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	existing := &domain.Booking{
		ID:              10,
		GuideID:         2,
		StartTime:       "13:00",
		DurationMinutes: 120, // 13:00 - 15:00, пересекается с 14:00 - 16:00
		Status:          domain.StatusConfirmed,
	}

	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{existing}, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			t.Fatal("Create must not be called on a schedule conflict")
			return nil, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cancelled := &domain.Booking{
		ID:              10,
		GuideID:         2,
		StartTime:       "14:00",
		DurationMinutes: 120,
		Status:          domain.StatusCancelled,
	}

	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{cancelled}, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			out := *booking
			out.ID = 11
			return &out, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
}

func TestExecute_BackToBackBookingsDoNotConflict(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	// Существующий тур 12:00 - 14:00, запрошенный 14:00 - 16:00
	adjacent := &domain.Booking{
		ID:              10,
		GuideID:         2,
		StartTime:       "12:00",
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
	}

	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{adjacent}, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			out := *booking
			out.ID = 11
			return &out, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_GuideAndTourChecks(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{}

	tests := []struct {
		name    string
		guide   *guideservice.Guide
		tour    *guideservice.Tour
		req     *Request
		wantErr error
	}{
		{
			name: "inactive guide",
			guide: &guideservice.Guide{
				ID: 2, Name: "Ana", CityID: 5, Timezone: "UTC", Active: false,
			},
			tour:    activeTour(),
			req:     validRequest(),
			wantErr: ErrGuideInactive,
		},
		{
			name:  "tour owned by another guide",
			guide: activeGuide(),
			tour: &guideservice.Tour{
				ID: 3, GuideID: 99, Name: "Old Town Walk", Active: true,
			},
			req:     validRequest(),
			wantErr: ErrTourNotFound,
		},
		{
			name:  "inactive tour",
			guide: activeGuide(),
			tour: &guideservice.Tour{
				ID: 3, GuideID: 2, Name: "Old Town Walk", Active: false,
			},
			req:     validRequest(),
			wantErr: ErrTourInactive,
		},
		{
			name:  "party larger than the tour limit",
			guide: activeGuide(),
			tour: &guideservice.Tour{
				ID: 3, GuideID: 2, Name: "Old Town Walk", MaxPartySize: 4, Active: true,
			},
			req: func() *Request {
				r := validRequest()
				r.PartySize = 5
				return r
			}(),
			wantErr: ErrPartySizeTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockGuideClient{
				getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
					return tt.guide, nil
				},
				getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
					return tt.tour, nil
				},
			}

			uc := newTestUseCase(repo, client, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownGuideTimezone(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return &guideservice.Guide{
				ID: 2, Name: "Ana", CityID: 5, Timezone: "Not/A_Zone", Active: true,
			}, nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return activeTour(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, client, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestExecute_TourWithoutDurationGetsDefault(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tour := activeTour()
	tour.DurationMinutes = 0
	tour.Price = nil

	var stored *domain.Booking
	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			stored = booking
			out := *booking
			out.ID = 1
			return &out, nil
		},
	}
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return activeGuide(), nil
		},
		getTour: func(ctx context.Context, guideID, tourID int64) (*guideservice.Tour, error) {
			return tour, nil
		},
	}

	uc := newTestUseCase(repo, client, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, domain.DefaultTourDurationMinutes, stored.DurationMinutes)
	assert.Equal(t, 0.0, stored.TourPrice, "price-on-request tours are stored with zero price")
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *Request) {}, wantErr: false},
		{name: "missing traveler", mutate: func(r *Request) { r.TravelerID = 0 }, wantErr: true},
		{name: "missing guide", mutate: func(r *Request) { r.GuideID = 0 }, wantErr: true},
		{name: "missing tour", mutate: func(r *Request) { r.TourID = 0 }, wantErr: true},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: true},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: true},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }, wantErr: true},
		{name: "party size zero", mutate: func(r *Request) { r.PartySize = 0 }, wantErr: true},
		{name: "party size above max", mutate: func(r *Request) { r.PartySize = domain.MaxPartySize + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCountOverlappingBookings(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},  // 10:00 - 11:00
		{StartTime: "12:00", DurationMinutes: 120, Status: domain.StatusPending},   // 12:00 - 14:00
		{StartTime: "12:00", DurationMinutes: 120, Status: domain.StatusCancelled}, // неактивное
	}

	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
		want      int
	}{
		{name: "no overlap before everything", startTime: "08:00", duration: 60, want: 0},
		{name: "overlaps one active booking", startTime: "10:30", duration: 60, want: 1},
		{name: "overlaps two active bookings", startTime: "10:30", duration: 240, want: 2},
		{name: "cancelled booking is ignored", startTime: "12:30", duration: 30, want: 1},
		{name: "end equal to next start is not an overlap", startTime: "11:00", duration: 60, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countOverlappingBookings(tt.startTime, tt.duration, bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
