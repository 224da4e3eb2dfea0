package admin_search_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	bookingsService "github.com/rainbowtours/RTG-BookingService/internal/service/bookings"
	"github.com/rainbowtours/RTG-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "invalid filter parameters"

	defaultLimit = 50
	maxLimit     = 500
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

// Handle GET /api/v1/admin/bookings/search?q=&status=&start_date=&end_date=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.AdminSearch(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings/search - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}

func parseRequest(r *http.Request) (*models.AdminSearchRequest, error) {
	req := &models.AdminSearchRequest{
		Limit: defaultLimit,
	}

	query := r.URL.Query()

	if q := query.Get("q"); q != "" {
		req.NameQuery = &q
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

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

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return nil, errors.New("limit must be a positive integer")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}

	return req, nil
}
