package resolve_city

import (
	"errors"
	"net/http"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/resolve_city"
)

const (
	msgInvalidBody        = "invalid request body"
	msgMissingFields      = "city name and country code are required"
	msgCountryBlocked     = "this country is not available for onboarding"
	msgCityBlocked        = "this city is not available for onboarding"
	msgCountryUnsupported = "bookings are not supported in this country yet"
)

type Handler struct {
	useCase ResolveCityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveCityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cities/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.ExecuteOnboarding(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, usecase.ErrCountryBlocked):
			h.logger.Warn("POST /cities/resolve - Blocked country %q", req.CountryCode)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCountryBlocked)

		case errors.Is(err, usecase.ErrCityBlocked):
			h.logger.Warn("POST /cities/resolve - Blocked city %q", req.CityName)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCityBlocked)

		case errors.Is(err, usecase.ErrCountryNotSupported):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCountryUnsupported)

		default:
			h.logger.Error("POST /cities/resolve - Failed for city=%q country=%q: %v", req.CityName, req.CountryCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
