package get_guide_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/api/middleware"
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	bookingsService "github.com/rainbowtours/RTG-BookingService/internal/service/bookings"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidGuideID = "invalid guide id"
	msgInvalidFilter  = "invalid filter parameters"
	msgAccessDenied   = "access denied"
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

// Handle GET /api/v1/guides/{guideId}/bookings?start_date=&end_date=&status=&include_inactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	guideID, err := strconv.ParseInt(mux.Vars(r)["guideId"], 10, 64)
	if err != nil || guideID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	req, err := parseRequest(r, guideID, userID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetGuideBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /guides/%d/bookings - Access denied for user=%d", guideID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /guides/%d/bookings - Invalid filter: %v", guideID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /guides/%d/bookings - Failed: %v", guideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}

func parseRequest(r *http.Request, guideID, userID int64) (*models.GetGuideBookingsRequest, error) {
	req := &models.GetGuideBookingsRequest{
		GuideID: guideID,
		UserID:  userID,
	}

	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("include_inactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
