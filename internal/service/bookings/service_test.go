package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	bookingRepo "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/booking"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/paymentservice"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
	"github.com/rainbowtours/RTG-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByID              func(ctx context.Context, id int64) (*domain.Booking, error)
	getByTravelerID      func(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	getByGuideWithFilter func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error)
	searchAdmin          func(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error)
	updateStatus         func(ctx context.Context, id int64, status domain.BookingStatus) error
	cancel               func(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByID(ctx, id)
}

func (m *mockBookingRepo) GetByTravelerID(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByTravelerID(ctx, travelerID, status)
}

func (m *mockBookingRepo) GetByGuideWithFilter(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
	return m.getByGuideWithFilter(ctx, filter)
}

func (m *mockBookingRepo) SearchAdmin(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	return m.searchAdmin(ctx, filter)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatus(ctx, id, status)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	return m.cancel(ctx, id, status, reason)
}

type mockPaymentClient struct {
	verifyChargeSettled func(ctx context.Context, bookingReference string) (*paymentservice.Charge, error)
}

func (m *mockPaymentClient) VerifyChargeSettled(ctx context.Context, bookingReference string) (*paymentservice.Charge, error) {
	return m.verifyChargeSettled(ctx, bookingReference)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         1,
		Reference:  "ref-0001",
		TravelerID: 10,
		GuideID:    20,
		Status:     status,
	}
}

func TestGetByID_ParticipantsOnly(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	t.Run("traveler can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("guide can read", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 20)
		assert.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetByID_PresentationFields(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusAccepted), nil
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "Accepted", resp.StatusLabel)
	assert.Equal(t, "badge-blue", resp.StatusStyle)
	assert.False(t, resp.MessagingEnabled, "messaging stays closed until confirmed")
	assert.True(t, resp.ContactVisible, "contacts open on acceptance")
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetTravelerBookings_SelfOnly(t *testing.T) {
	repo := &mockBookingRepo{
		getByTravelerID: func(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
			return []*domain.Booking{testBooking(domain.StatusPending)}, nil
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	resp, err := svc.GetTravelerBookings(context.Background(), &models.GetTravelerBookingsRequest{
		TravelerID: 10, UserID: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetTravelerBookings(context.Background(), &models.GetTravelerBookingsRequest{
		TravelerID: 10, UserID: 11,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetTravelerBookings_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockPaymentClient{}, nopLogger{})

	_, err := svc.GetTravelerBookings(context.Background(), &models.GetTravelerBookingsRequest{
		TravelerID: 10, UserID: 10, Status: ptr.Ptr("imaginary"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetGuideBookings_SelfOnly(t *testing.T) {
	repo := &mockBookingRepo{
		getByGuideWithFilter: func(ctx context.Context, filter domain.GuideBookingsFilter) ([]*domain.Booking, error) {
			assert.Equal(t, int64(20), filter.GuideID)
			return nil, nil
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	_, err := svc.GetGuideBookings(context.Background(), &models.GetGuideBookingsRequest{
		GuideID: 20, UserID: 20,
	})
	assert.NoError(t, err)

	_, err = svc.GetGuideBookings(context.Background(), &models.GetGuideBookingsRequest{
		GuideID: 20, UserID: 10,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name       string
		booking    *domain.Booking
		userID     int64
		wantStatus domain.BookingStatus
		wantErr    error
	}{
		{
			name:       "traveler cancels pending as cancelled",
			booking:    testBooking(domain.StatusPending),
			userID:     10,
			wantStatus: domain.StatusCancelled,
		},
		{
			name:       "guide rejecting pending records declined",
			booking:    testBooking(domain.StatusPending),
			userID:     20,
			wantStatus: domain.StatusDeclined,
		},
		{
			name:       "guide cancelling confirmed records cancelled",
			booking:    testBooking(domain.StatusConfirmed),
			userID:     20,
			wantStatus: domain.StatusCancelled,
		},
		{
			name:    "stranger is denied",
			booking: testBooking(domain.StatusPending),
			userID:  99,
			wantErr: ErrAccessDenied,
		},
		{
			name:    "completed cannot be cancelled",
			booking: testBooking(domain.StatusCompleted),
			userID:  10,
			wantErr: ErrCannotCancel,
		},
		{
			name:    "declined cannot be cancelled again",
			booking: testBooking(domain.StatusDeclined),
			userID:  10,
			wantErr: ErrCannotCancel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotStatus domain.BookingStatus
			repo := &mockBookingRepo{
				getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
					return tt.booking, nil
				},
				cancel: func(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
					gotStatus = status
					assert.Equal(t, "plans changed", reason)
					return nil
				},
			}
			svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
				UserID:             tt.userID,
				CancellationReason: "plans changed",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to accepted", from: domain.StatusPending, to: "accepted"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending cannot jump to confirmed", from: domain.StatusPending, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "cancelled", wantErr: ErrInvalidTransition},
		{name: "unknown target status", from: domain.StatusPending, to: "refunded", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{
				getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
					return testBooking(tt.from), nil
				},
				updateStatus: func(ctx context.Context, id int64, status domain.BookingStatus) error {
					return nil
				},
			}
			svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: 20,
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatus_PaidRequiresSettledCharge(t *testing.T) {
	newRepo := func() *mockBookingRepo {
		return &mockBookingRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return testBooking(domain.StatusAccepted), nil
			},
			updateStatus: func(ctx context.Context, id int64, status domain.BookingStatus) error {
				assert.Equal(t, domain.StatusPaid, status)
				return nil
			},
		}
	}
	payReq := &models.UpdateStatusRequest{UserID: 10, Status: "paid"}

	t.Run("settled charge allows the transition", func(t *testing.T) {
		payment := &mockPaymentClient{
			verifyChargeSettled: func(ctx context.Context, ref string) (*paymentservice.Charge, error) {
				assert.Equal(t, "ref-0001", ref)
				return &paymentservice.Charge{ID: "ch_1", Status: paymentservice.ChargeSucceeded}, nil
			},
		}
		svc := NewService(newRepo(), payment, nopLogger{})

		assert.NoError(t, svc.UpdateStatus(context.Background(), 1, payReq))
	})

	t.Run("pending charge blocks the transition", func(t *testing.T) {
		payment := &mockPaymentClient{
			verifyChargeSettled: func(ctx context.Context, ref string) (*paymentservice.Charge, error) {
				return &paymentservice.Charge{ID: "ch_1", Status: paymentservice.ChargePending}, nil
			},
		}
		svc := NewService(newRepo(), payment, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, payReq)
		assert.ErrorIs(t, err, ErrPaymentNotSettled)
	})

	t.Run("missing charge blocks the transition", func(t *testing.T) {
		payment := &mockPaymentClient{
			verifyChargeSettled: func(ctx context.Context, ref string) (*paymentservice.Charge, error) {
				return nil, paymentservice.ErrChargeNotFound
			},
		}
		svc := NewService(newRepo(), payment, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, payReq)
		assert.ErrorIs(t, err, ErrPaymentNotSettled)
	})

	t.Run("degraded payment service maps to retryable error", func(t *testing.T) {
		payment := &mockPaymentClient{
			verifyChargeSettled: func(ctx context.Context, ref string) (*paymentservice.Charge, error) {
				return nil, paymentservice.ErrServiceDegraded
			},
		}
		svc := NewService(newRepo(), payment, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, payReq)
		assert.ErrorIs(t, err, ErrPaymentUnavailable)
	})

	t.Run("other transitions skip payment verification", func(t *testing.T) {
		payment := &mockPaymentClient{
			verifyChargeSettled: func(ctx context.Context, ref string) (*paymentservice.Charge, error) {
				t.Fatal("payment must not be verified for non-paid transitions")
				return nil, nil
			},
		}
		repo := &mockBookingRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return testBooking(domain.StatusPending), nil
			},
			updateStatus: func(ctx context.Context, id int64, status domain.BookingStatus) error {
				return nil
			},
		}
		svc := NewService(repo, payment, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 20, Status: "accepted"})
		assert.NoError(t, err)
	})
}

func TestAdminSearch(t *testing.T) {
	var gotFilter domain.AdminBookingsFilter
	repo := &mockBookingRepo{
		searchAdmin: func(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return []*domain.Booking{testBooking(domain.StatusConfirmed)}, nil
		},
	}
	svc := NewService(repo, &mockPaymentClient{}, nopLogger{})

	resp, err := svc.AdminSearch(context.Background(), &models.AdminSearchRequest{
		NameQuery: ptr.Ptr("ana"),
		Status:    ptr.Ptr("confirmed"),
		Limit:     25,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, gotFilter.NameQuery)
	assert.Equal(t, "ana", *gotFilter.NameQuery)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *gotFilter.Status)
	assert.Equal(t, 25, gotFilter.Limit)
}

func TestAdminSearch_InvalidStatus(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockPaymentClient{}, nopLogger{})

	_, err := svc.AdminSearch(context.Background(), &models.AdminSearchRequest{
		Status: ptr.Ptr("nonsense"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
