package models

import "time"

// Booking statuses. The ledger only ever writes StatusPending; the other two
// exist so that externally edited ledgers still round-trip.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is one ledger record. Records are append-only: once written they are
// never edited or removed by the engine.
type Booking struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name"`
	GuestName       string    `json:"guest_name"`
	GuestPhone      string    `json:"guest_phone"`
	GuestEmail      string    `json:"guest_email,omitempty"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Time            string    `json:"time"` // HH:MM:SS
	GuestsCount     int       `json:"guests_count"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
