package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mosgid/gid/internal/apperr"
	"github.com/mosgid/gid/internal/catalog"
	"github.com/mosgid/gid/internal/events"
	"github.com/mosgid/gid/internal/format"
	"github.com/mosgid/gid/internal/ledger"
	"github.com/mosgid/gid/internal/sse"
)

// Handler holds API route handlers.
type Handler struct {
	catalog *catalog.Engine
	events  *events.Catalog
	ledger  *ledger.Ledger
	broker  *sse.Broker
}

// NewHandler creates a new Handler. broker may be nil; booking events are
// then not broadcast.
func NewHandler(cat *catalog.Engine, evs *events.Catalog, led *ledger.Ledger, broker *sse.Broker) *Handler {
	return &Handler{catalog: cat, events: evs, ledger: led, broker: broker}
}

// ListRestaurants handles GET /restaurants with optional category, price,
// and q query parameters. The three predicates are ANDed; results keep the
// canonical rating order.
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	price, _ := strconv.Atoi(q.Get("price"))

	visible := h.catalog.VisibleWith(catalog.Filter{
		Category:   q.Get("category"),
		PriceLevel: price,
		Query:      q.Get("q"),
	})
	writeJSON(w, http.StatusOK, RestaurantListResponse{
		Restaurants: visible,
		Total:       len(visible),
	})
}

// FeaturedRestaurants handles GET /restaurants/featured. Independent of any
// filter parameters: always the top-rated featured records.
func (h *Handler) FeaturedRestaurants(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	featured := h.catalog.Featured(limit)
	writeJSON(w, http.StatusOK, RestaurantListResponse{
		Restaurants: featured,
		Total:       len(featured),
	})
}

// GetRestaurant handles GET /restaurants/{slug}.
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	rest, err := h.catalog.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("get restaurant failed", slog.String("slug", slug), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, NewRestaurantDetail(rest))
}

// ListEvents handles GET /events with an optional type parameter. The event
// source is empty in this build, so the list is normally empty.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	visible := h.events.VisibleWith(r.URL.Query().Get("type"))
	views := make([]EventView, 0, len(visible))
	for _, e := range visible {
		views = append(views, NewEventView(e))
	}
	writeJSON(w, http.StatusOK, EventListResponse{Events: views, Total: len(views)})
}

// CreateBooking handles POST /bookings. Field validation happens here, before
// the ledger; a failed durable write still returns the booking with a
// non-fatal warning.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	rest, err := h.catalog.FindBySlug(req.RestaurantSlug)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("unknown restaurant"))
		return
	}

	booking, err := h.ledger.Append(req.Booking(rest))
	resp := CreateBookingResponse{Booking: booking, Persisted: err == nil}
	if err != nil {
		if !errors.Is(err, apperr.ErrStorage) {
			slog.Error("append booking failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
		// Kept in memory for this session; let the client know durability
		// is degraded.
		slog.Warn("booking persisted in memory only", slog.String("id", booking.ID), slog.String("error", err.Error()))
		resp.Warning = "booking saved for this session only; storage write failed"
	}

	if h.broker != nil {
		h.broker.PublishBookingCreated(booking.ID, booking.RestaurantName)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListBookings handles GET /bookings: the ledger in append order.
func (h *Handler) ListBookings(w http.ResponseWriter, _ *http.Request) {
	all := h.ledger.List()
	views := make([]BookingView, 0, len(all))
	for _, b := range all {
		views = append(views, NewBookingView(b))
	}
	writeJSON(w, http.StatusOK, BookingListResponse{Bookings: views, Total: len(views)})
}

// Labels handles GET /labels: the full label tables for client-side chips.
func (h *Handler) Labels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, format.Labels())
}

// Stats handles GET /stats: the hero counters.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{
		"restaurants": h.catalog.Len(),
		"events":      h.events.Len(),
		"bookings":    h.ledger.Len(),
	})
}
