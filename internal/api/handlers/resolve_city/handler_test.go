package resolve_city

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/resolve_city"
)

type mockUseCase struct {
	executeOnboarding func(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

func (m *mockUseCase) ExecuteOnboarding(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
	return m.executeOnboarding(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc ResolveCityUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cities/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CreatedCity(t *testing.T) {
	uc := &mockUseCase{
		executeOnboarding: func(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
			assert.Equal(t, "Lisbon", req.CityName)
			assert.Equal(t, "PT", req.CountryCode)
			return &usecase.Response{CityID: 42, Slug: "lisbon", Created: true}, nil
		},
	}

	rec := doRequest(t, uc, `{"cityName":"Lisbon","countryCode":"PT","countryName":"Portugal"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"cityId":42,"slug":"lisbon","created":true}`, rec.Body.String())
}

func TestHandle_ExistingCity(t *testing.T) {
	uc := &mockUseCase{
		executeOnboarding: func(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
			return &usecase.Response{CityID: 9, Slug: "lisbon", Created: false}, nil
		},
	}

	rec := doRequest(t, uc, `{"cityName":"LISBON","countryCode":"PT"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cityId":9,"slug":"lisbon","created":false}`, rec.Body.String())
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation error", err: usecase.ErrValidation, wantCode: http.StatusBadRequest},
		{name: "blocked country", err: usecase.ErrCountryBlocked, wantCode: http.StatusUnprocessableEntity},
		{name: "blocked city", err: usecase.ErrCityBlocked, wantCode: http.StatusUnprocessableEntity},
		{name: "unsupported country", err: usecase.ErrCountryNotSupported, wantCode: http.StatusUnprocessableEntity},
		{name: "persistence error", err: usecase.ErrPersistence, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				executeOnboarding: func(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
					return nil, tt.err
				},
			}

			rec := doRequest(t, uc, `{"cityName":"Anywhere","countryCode":"XX"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &mockUseCase{
		executeOnboarding: func(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
			t.Fatal("use case must not run for a malformed body")
			return nil, nil
		},
	}

	rec := doRequest(t, uc, `{"cityName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, uc, `{"cityName":"Lisbon","unknownField":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields are rejected")
}
