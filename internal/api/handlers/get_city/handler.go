package get_city

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
	"github.com/rainbowtours/RTG-BookingService/internal/domain"
	geoStorage "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/geo"
)

const (
	msgMissingSlug  = "city slug is required"
	msgCityNotFound = "city not found"
)

type Handler struct {
	geoRepo GeoRepository
	logger  Logger
}

func NewHandler(geoRepo GeoRepository, logger Logger) *Handler {
	return &Handler{
		geoRepo: geoRepo,
		logger:  logger,
	}
}

// Response публичная карточка города
type Response struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Active      bool   `json:"active"`
}

// Handle GET /api/v1/cities/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	city, err := h.geoRepo.GetCityBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, geoStorage.ErrCityNotFound) {
			handlers.RespondNotFound(w, msgCityNotFound)
			return
		}
		h.logger.Error("GET /cities/%s - Failed: %v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainCity(city))
}

func fromDomainCity(city *domain.City) *Response {
	return &Response{
		ID:          city.ID,
		Name:        city.Name,
		Slug:        city.Slug,
		CountryCode: city.CountryCode,
		CountryName: city.CountryName,
		Active:      city.Active,
	}
}
