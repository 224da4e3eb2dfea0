package get_safe_booking_start

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	"github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
)

const (
	msgInvalidGuideID = "invalid guide id"
	msgGuideNotFound  = "guide not found"
	msgBadTimezone    = "guide has an unknown timezone"
)

type Handler struct {
	guideClient  GuideServiceClient
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(guideClient GuideServiceClient, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		guideClient:  guideClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Response самое раннее допустимое время начала тура у гида.
// safeBookingStart отдается в таймзоне гида, в RFC 3339.
type Response struct {
	GuideID          int64  `json:"guideId"`
	Timezone         string `json:"timezone"`
	SafeBookingStart string `json:"safeBookingStart"`
	MinDate          string `json:"minDate"`
	MinTime          string `json:"minTime"`
}

// Handle GET /api/v1/guides/{guideId}/safe-booking-start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guideID, err := strconv.ParseInt(mux.Vars(r)["guideId"], 10, 64)
	if err != nil || guideID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidGuideID)
		return
	}

	guide, err := h.guideClient.GetGuide(r.Context(), guideID)
	if err != nil {
		if errors.Is(err, guideservice.ErrGuideNotFound) {
			handlers.RespondNotFound(w, msgGuideNotFound)
			return
		}
		h.logger.Error("GET /guides/%d/safe-booking-start - GetGuide failed: %v", guideID, err)
		handlers.RespondInternalError(w)
		return
	}

	safeStart, err := domain.SafeBookingStart(h.timeProvider.Now(), guide.Timezone)
	if err != nil {
		h.logger.Error("GET /guides/%d/safe-booking-start - Bad timezone %q: %v", guideID, guide.Timezone, err)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgBadTimezone)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &Response{
		GuideID:          guideID,
		Timezone:         guide.Timezone,
		SafeBookingStart: safeStart.Format(time.RFC3339),
		MinDate:          safeStart.Format(domain.DateFormat),
		MinTime:          safeStart.Format(domain.TimeFormat),
	})
}
