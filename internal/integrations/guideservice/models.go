package guideservice

// Guide профиль гида из GuideService
type Guide struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CityID   int64  `json:"city_id"`
	Timezone string `json:"timezone"` // IANA zone, e.g. "Europe/Berlin"
	Active   bool   `json:"active"`
}

// Tour услуга (тур) гида из GuideService
type Tour struct {
	ID              int64    `json:"id"`
	GuideID         int64    `json:"guide_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"` // nil = цена по запросу
	DurationMinutes int      `json:"duration_minutes"`
	MaxPartySize    int      `json:"max_party_size"`
	Active          bool     `json:"active"`
}

// ErrorResponse модель ошибки от GuideService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
