package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	usecase "github.com/rainbowtours/RTG-BookingService/internal/usecase/export_bookings"
)

const (
	msgInvalidFilter = "invalid filter parameters"

	defaultLimit = 1000
	maxLimit     = 10000
)

type Handler struct {
	useCase ExportUseCase
	logger  Logger
}

func NewHandler(useCase ExportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/export?q=&status=&start_date=&end_date=&limit=
// Отдает CSV файл как attachment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings/export - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /admin/bookings/export - Write response: %v", err)
	}
}

func parseRequest(r *http.Request) (*usecase.Request, error) {
	req := &usecase.Request{
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
