package get_safe_booking_start

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
)

type mockGuideClient struct {
	getGuide func(ctx context.Context, guideID int64) (*guideservice.Guide, error)
}

func (m *mockGuideClient) GetGuide(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
	return m.getGuide(ctx, guideID)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, guideID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/"+guideID+"/safe-booking-start", nil)
	req = mux.SetURLVars(req, map[string]string{"guideId": guideID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSafeStart(t *testing.T) {
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			assert.Equal(t, int64(7), guideID)
			return &guideservice.Guide{ID: 7, Timezone: "UTC", Active: true}, nil
		},
	}
	clock := fixedTimeProvider{now: time.Date(2024, 1, 1, 0, 0, 30, 500_000_000, time.UTC)}

	h := NewHandler(client, clock, nopLogger{})
	rec := doRequest(t, h, "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"guideId": 7,
		"timezone": "UTC",
		"safeBookingStart": "2024-01-02T00:01:00Z",
		"minDate": "2024-01-02",
		"minTime": "00:01"
	}`, rec.Body.String())
}

func TestHandle_GuideNotFound(t *testing.T) {
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return nil, guideservice.ErrGuideNotFound
		},
	}

	h := NewHandler(client, fixedTimeProvider{now: time.Now()}, nopLogger{})
	rec := doRequest(t, h, "404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidGuideID(t *testing.T) {
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			t.Fatal("guide lookup must not run for an invalid id")
			return nil, nil
		},
	}

	h := NewHandler(client, fixedTimeProvider{now: time.Now()}, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, doRequest(t, h, "abc").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, h, "0").Code)
}

func TestHandle_UnknownGuideTimezone(t *testing.T) {
	client := &mockGuideClient{
		getGuide: func(ctx context.Context, guideID int64) (*guideservice.Guide, error) {
			return &guideservice.Guide{ID: 7, Timezone: "Not/A_Zone", Active: true}, nil
		},
	}

	h := NewHandler(client, fixedTimeProvider{now: time.Now()}, nopLogger{})
	rec := doRequest(t, h, "7")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
