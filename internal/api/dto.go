package api

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mosgid/gid/internal/format"
	"github.com/mosgid/gid/internal/models"
)

// RestaurantListResponse wraps filtered catalog listings.
type RestaurantListResponse struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Total       int                 `json:"total"`
}

// RestaurantDetail is a catalog record enriched with the display strings the
// modal view renders: label lookups, price glyphs, and the working-hours
// summary.
type RestaurantDetail struct {
	models.Restaurant

	CategoryLabel string   `json:"category_label"`
	PriceSymbol   string   `json:"price_symbol"`
	AvgCheckText  string   `json:"avg_check_text,omitempty"`
	HoursText     string   `json:"hours_text"`
	TagLabels     []string `json:"tag_labels,omitempty"`
	FeatureLabels []string `json:"feature_labels,omitempty"`
	Photo         string   `json:"photo"`
}

// NewRestaurantDetail builds the enriched detail view for one record.
func NewRestaurantDetail(r models.Restaurant) RestaurantDetail {
	d := RestaurantDetail{
		Restaurant:    r,
		CategoryLabel: format.CategoryLabel(r.Category),
		PriceSymbol:   format.PriceSymbol(r.PriceLevel),
		HoursText:     format.WorkingHours(r.WorkingHours),
		Photo:         format.PhotoURL(r),
	}
	if r.AvgCheck > 0 {
		d.AvgCheckText = "~" + format.Price(r.AvgCheck) + " ₽"
	}
	for _, t := range r.Tags {
		d.TagLabels = append(d.TagLabels, format.TagLabel(t))
	}
	for k, on := range r.Features {
		if on {
			d.FeatureLabels = append(d.FeatureLabels, format.FeatureLabel(k))
		}
	}
	return d
}

// EventView is an event with its display strings.
type EventView struct {
	models.Event

	TypeLabel string `json:"type_label"`
	DateText  string `json:"date_text,omitempty"`
	PriceText string `json:"price_text"`
	Photo     string `json:"photo"`
}

// NewEventView builds the display form of one event.
func NewEventView(e models.Event) EventView {
	v := EventView{
		Event:     e,
		TypeLabel: format.EventTypeLabel(e.EventType),
		PriceText: format.EventPrice(e),
		Photo:     e.PhotoURL,
	}
	if e.DateStart != "" {
		v.DateText = format.EventDateFull(e.DateStart, e.DateEnd)
	}
	if v.Photo == "" {
		v.Photo = format.EventPlaceholder(e.EventType)
	}
	return v
}

// EventListResponse wraps filtered event listings.
type EventListResponse struct {
	Events []EventView `json:"events"`
	Total  int         `json:"total"`
}

// CreateBookingRequest is the booking form payload. Required-field checks
// live here: the ledger itself trusts its callers.
type CreateBookingRequest struct {
	RestaurantSlug  string `json:"restaurant_slug"`
	GuestName       string `json:"guest_name"`
	GuestPhone      string `json:"guest_phone"`
	GuestEmail      string `json:"guest_email,omitempty"`
	Date            string `json:"date"` // YYYY-MM-DD, tomorrow or later
	Time            string `json:"time"` // HH:MM or HH:MM:SS
	GuestsCount     int    `json:"guests_count"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Validate checks the booking form contract.
func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RestaurantSlug, validation.Required),
		validation.Field(&r.GuestName, validation.Required),
		validation.Field(&r.GuestPhone, validation.Required),
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02"), validation.By(dateTomorrowOrLater)),
		validation.Field(&r.Time, validation.Required, validation.By(validClockTime)),
		validation.Field(&r.GuestsCount, validation.Required, validation.Min(1)),
	)
}

// Booking builds the ledger record from the form. Restaurant id and name are
// the denormalized copy captured at creation time.
func (r CreateBookingRequest) Booking(rest models.Restaurant) models.Booking {
	return models.Booking{
		RestaurantID:    rest.ID,
		RestaurantName:  rest.Name,
		GuestName:       r.GuestName,
		GuestPhone:      r.GuestPhone,
		GuestEmail:      r.GuestEmail,
		Date:            r.Date,
		Time:            normalizeClockTime(r.Time),
		GuestsCount:     r.GuestsCount,
		SpecialRequests: r.SpecialRequests,
	}
}

func dateTomorrowOrLater(value interface{}) error {
	s, _ := value.(string)
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	tomorrow := time.Now().AddDate(0, 0, 1)
	floor := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, d.Location())
	if d.Before(floor) {
		return fmt.Errorf("must be tomorrow or later")
	}
	return nil
}

func validClockTime(value interface{}) error {
	s, _ := value.(string)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return fmt.Errorf("must be HH:MM or HH:MM:SS")
}

// normalizeClockTime pads "19:30" to "19:30:00"; the ledger stores seconds.
func normalizeClockTime(s string) string {
	if _, err := time.Parse("15:04", s); err == nil {
		return s + ":00"
	}
	return s
}

// BookingView is a ledger record with its display strings.
type BookingView struct {
	models.Booking

	DateText    string `json:"date_text"`
	StatusLabel string `json:"status_label"`
}

var statusLabels = map[string]string{
	models.StatusPending:   "Ожидает",
	models.StatusConfirmed: "Подтверждено",
	models.StatusCancelled: "Отменено",
}

// NewBookingView builds the display form of one ledger record.
func NewBookingView(b models.Booking) BookingView {
	label, ok := statusLabels[b.Status]
	if !ok {
		label = b.Status
	}
	return BookingView{
		Booking:     b,
		DateText:    format.BookingDate(b.Date),
		StatusLabel: label,
	}
}

// BookingListResponse wraps the ledger listing.
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
	Total    int           `json:"total"`
}

// CreateBookingResponse reports an appended booking. Persisted is false when
// the durable write failed; the record is still held for this session.
type CreateBookingResponse struct {
	Booking   models.Booking `json:"booking"`
	Persisted bool           `json:"persisted"`
	Warning   string         `json:"warning,omitempty"`
}
