package domain

import "time"

// Country represents a country guides can operate in
type Country struct {
	ID        int64
	Code      string // two-letter ISO code, uppercase, unique
	Name      string
	Supported bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// City represents a city guides offer tours in.
// CountryCode and CountryName are denormalized from the country row and
// backfilled lazily on older records that predate the denormalization.
type City struct {
	ID          int64
	CountryID   int64
	Name        string
	Slug        string // URL-safe, unique across all cities
	CountryCode string
	CountryName string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NeedsCountryBackfill returns true if the denormalized country fields
// are missing and should be backfilled from the country row
func (c *City) NeedsCountryBackfill() bool {
	return c.CountryCode == "" || c.CountryName == ""
}
