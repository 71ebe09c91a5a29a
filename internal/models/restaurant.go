// Package models defines the domain types for the guide.
package models

// WorkingHours maps a weekday key ("mon".."sun") to an opening range like "10:00-22:00".
// Days without an entry are treated as unknown.
type WorkingHours map[string]string

// Restaurant is one catalog entry. Records are immutable after load; the
// catalog engine owns the canonical list and hands out shared slices that
// callers must not mutate.
type Restaurant struct {
	ID               string          `json:"id"`
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	PriceLevel       int             `json:"price_level"`
	Rating           float64         `json:"rating"`
	AvgCheck         int             `json:"avg_check,omitempty"`
	CuisineType      []string        `json:"cuisine_type,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Features         map[string]bool `json:"features,omitempty"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"short_description,omitempty"`
	Address          string          `json:"address"`
	MetroStation     string          `json:"metro_station,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	WebsiteURL       string          `json:"website_url,omitempty"`
	PhotoURL         string          `json:"photo_url,omitempty"`
	WorkingHours     WorkingHours    `json:"working_hours,omitempty"`
	IsFeatured       bool            `json:"is_featured,omitempty"`
}
