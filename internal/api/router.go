package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events/stream inside the auth
// group so a view layer can follow core mutations.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Catalog.
	r.Get("/restaurants", h.ListRestaurants)
	r.Get("/restaurants/featured", h.FeaturedRestaurants)
	r.Get("/restaurants/{slug}", h.GetRestaurant)

	// Events (empty source in this build).
	r.Get("/events", h.ListEvents)

	// Booking ledger.
	r.Post("/bookings", h.CreateBooking)
	r.Get("/bookings", h.ListBookings)

	// Presentation tables and counters.
	r.Get("/labels", h.Labels)
	r.Get("/stats", h.Stats)

	// SSE stream (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events/stream", sseHandler.ServeHTTP)
	}

	return r
}
