package get_traveler_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/api/middleware"
	bookingsService "github.com/rainbowtours/RTG-BookingService/internal/service/bookings"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidTravelerID = "invalid traveler id"
	msgInvalidStatus     = "unknown booking status filter"
	msgAccessDenied      = "access denied"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/travelers/{travelerId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	travelerID, err := strconv.ParseInt(mux.Vars(r)["travelerId"], 10, 64)
	if err != nil || travelerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTravelerID)
		return
	}

	req := &models.GetTravelerBookingsRequest{
		TravelerID: travelerID,
		UserID:     userID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetTravelerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /travelers/%d/bookings - Access denied for user=%d", travelerID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /travelers/%d/bookings - Invalid filter: %v", travelerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /travelers/%d/bookings - Failed: %v", travelerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}
