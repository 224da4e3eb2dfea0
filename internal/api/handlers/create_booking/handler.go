package create_booking

import (
	"errors"
	"net/http"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/api/middleware"
	createBooking "github.com/rainbowtours/RTG-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgGuideNotFound      = "guide not found"
	msgGuideInactive      = "guide is not accepting bookings"
	msgTourNotFound       = "tour not found"
	msgTourInactive       = "tour is not available"
	msgUnknownTimezone    = "guide timezone is not recognized"
	msgTooSoon            = "tours must be booked at least 24 hours in advance"
	msgScheduleConflict   = "the guide is already booked at this time"
	msgPartySizeTooLarge  = "party size exceeds the tour limit"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrGuideNotFound):
			h.logger.Warn("POST /bookings - Guide not found: guide_id=%d", req.GuideID)
			handlers.RespondNotFound(w, msgGuideNotFound)

		case errors.Is(err, createBooking.ErrGuideInactive):
			h.logger.Warn("POST /bookings - Guide inactive: guide_id=%d", req.GuideID)
			handlers.RespondError(w, http.StatusConflict, msgGuideInactive)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: guide_id=%d, tour_id=%d", req.GuideID, req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrTourInactive):
			h.logger.Warn("POST /bookings - Tour inactive: tour_id=%d", req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgTourInactive)

		case errors.Is(err, createBooking.ErrUnknownTimezone):
			h.logger.Error("POST /bookings - Unknown guide timezone: guide_id=%d, error=%v", req.GuideID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnknownTimezone)

		case errors.Is(err, createBooking.ErrTooSoon):
			h.logger.Warn("POST /bookings - Too soon: user_id=%d, guide_id=%d", userID, req.GuideID)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createBooking.ErrScheduleConflict):
			h.logger.Warn("POST /bookings - Schedule conflict: guide_id=%d", req.GuideID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)

		case errors.Is(err, createBooking.ErrPartySizeTooLarge):
			h.logger.Warn("POST /bookings - Party too large: tour_id=%d, party=%d", req.TourID, req.PartySize)
			handlers.RespondBadRequest(w, msgPartySizeTooLarge)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, guide_id=%d, error=%v",
				userID, req.GuideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s, user_id=%d",
		result.ID, result.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
