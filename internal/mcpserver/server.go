// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the guide's catalog and booking ledger as tools over stdio, so an
// LLM concierge can search restaurants and file bookings.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mosgid/gid/internal/api"
	"github.com/mosgid/gid/internal/catalog"
	"github.com/mosgid/gid/internal/format"
	"github.com/mosgid/gid/internal/ledger"
)

// Server wraps the MCP server with guide tools.
type Server struct {
	mcp    *server.MCPServer
	engine *catalog.Engine
	ledger *ledger.Ledger
}

// New creates an MCP server with all guide tools registered.
func New(engine *catalog.Engine, led *ledger.Ledger) *Server {
	s := &Server{engine: engine, ledger: led}

	s.mcp = server.NewMCPServer(
		"Gid",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_restaurants",
		mcp.WithDescription("Search the restaurant catalog. All filters are optional and combined; "+
			"results keep the rating order."),
		mcp.WithString("query", mcp.Description("Free-text search over name, description, metro, address, cuisine, tags")),
		mcp.WithString("category", mcp.Description("Category key (e.g. georgian, rooftop); omit or 'all' for any")),
		mcp.WithNumber("price", mcp.Description("Exact price tier 1-4; omit or 0 for any")),
	), s.searchRestaurants)

	s.mcp.AddTool(mcp.NewTool("get_restaurant",
		mcp.WithDescription("Get the full detail card of one restaurant by slug."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Restaurant slug (from search results)")),
	), s.getRestaurant)

	s.mcp.AddTool(mcp.NewTool("list_bookings",
		mcp.WithDescription("List all saved bookings, oldest first."),
	), s.listBookings)

	s.mcp.AddTool(mcp.NewTool("create_booking",
		mcp.WithDescription("Save a table booking. Read the contract first via the "+
			"get_booking_contract tool; the date must be tomorrow or later."),
		mcp.WithString("restaurant_slug", mcp.Required(), mcp.Description("Slug of the restaurant to book")),
		mcp.WithString("guest_name", mcp.Required(), mcp.Description("Guest full name")),
		mcp.WithString("guest_phone", mcp.Required(), mcp.Description("Contact phone")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Booking date, YYYY-MM-DD, tomorrow or later")),
		mcp.WithString("time", mcp.Required(), mcp.Description("Booking time, HH:MM")),
		mcp.WithNumber("guests_count", mcp.Required(), mcp.Description("Number of guests, at least 1")),
		mcp.WithString("guest_email", mcp.Description("Optional contact email")),
		mcp.WithString("special_requests", mcp.Description("Optional free-form requests")),
	), s.createBooking)

	s.mcp.AddTool(mcp.NewTool("get_booking_contract",
		mcp.WithDescription("Returns the booking request contract. Call this before create_booking."),
	), s.getBookingContract)

	// Resource: booking contract.
	s.mcp.AddResource(
		mcp.NewResource("gid://booking-contract", "Booking Request Contract",
			mcp.WithResourceDescription("Field rules every booking request must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readBookingContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// searchHit is the compact result row returned by search_restaurants.
type searchHit struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	PriceSymbol string  `json:"price_symbol"`
	Category    string  `json:"category"`
	Metro       string  `json:"metro,omitempty"`
	Address     string  `json:"address"`
}

func (s *Server) searchRestaurants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := catalog.Filter{}
	if q, err := req.RequireString("query"); err == nil {
		f.Query = q
	}
	if c, err := req.RequireString("category"); err == nil {
		f.Category = c
	}
	if p, err := req.RequireFloat("price"); err == nil {
		f.PriceLevel = int(p)
	}

	visible := s.engine.VisibleWith(f)
	hits := make([]searchHit, 0, len(visible))
	for _, r := range visible {
		hits = append(hits, searchHit{
			Slug:        r.Slug,
			Name:        r.Name,
			Rating:      r.Rating,
			PriceSymbol: format.PriceSymbol(r.PriceLevel),
			Category:    format.CategoryLabel(r.Category),
			Metro:       r.MetroStation,
			Address:     r.Address,
		})
	}
	out, _ := json.MarshalIndent(hits, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getRestaurant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rest, err := s.engine.FindBySlug(slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
	}
	out, _ := json.MarshalIndent(api.NewRestaurantDetail(rest), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listBookings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := s.ledger.List()
	if len(all) == 0 {
		return mcp.NewToolResultText("no bookings"), nil
	}
	var lines []string
	for _, b := range all {
		lines = append(lines, fmt.Sprintf("%s: %s — %s %s, %d guests (%s)",
			b.ID, b.RestaurantName, format.BookingDate(b.Date), b.Time, b.GuestsCount, b.Status))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) createBooking(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	breq := api.CreateBookingRequest{}
	var err error
	if breq.RestaurantSlug, err = req.RequireString("restaurant_slug"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if breq.GuestName, err = req.RequireString("guest_name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if breq.GuestPhone, err = req.RequireString("guest_phone"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if breq.Date, err = req.RequireString("date"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if breq.Time, err = req.RequireString("time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	guests, err := req.RequireFloat("guests_count")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	breq.GuestsCount = int(guests)
	if v, err := req.RequireString("guest_email"); err == nil {
		breq.GuestEmail = v
	}
	if v, err := req.RequireString("special_requests"); err == nil {
		breq.SpecialRequests = v
	}

	if err := breq.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rest, err := s.engine.FindBySlug(breq.RestaurantSlug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown restaurant: %s", breq.RestaurantSlug)), nil
	}

	booking, err := s.ledger.Append(breq.Booking(rest))
	if err != nil {
		// Still saved for this session; report the degraded durability.
		return mcp.NewToolResultText(fmt.Sprintf(
			"saved for this session only (storage write failed): %s", booking.ID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("booked: %s at %s on %s %s", booking.ID,
		booking.RestaurantName, booking.Date, booking.Time)), nil
}

func (s *Server) getBookingContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(BookingContract), nil
}

func (s *Server) readBookingContractResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "gid://booking-contract",
			MIMEType: "text/markdown",
			Text:     BookingContract,
		},
	}, nil
}
