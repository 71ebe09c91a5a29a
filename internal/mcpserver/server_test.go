package mcpserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mosgid/gid/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	engine := testutil.Engine(t)
	led, _ := testutil.FileLedger(t)
	return New(engine, led)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct call-tool test helper; invoke the handlers.
	var result *mcp.CallToolResult
	var err error
	switch name {
	case "search_restaurants":
		result, err = srv.searchRestaurants(ctx, req)
	case "get_restaurant":
		result, err = srv.getRestaurant(ctx, req)
	case "list_bookings":
		result, err = srv.listBookings(ctx, req)
	case "create_booking":
		result, err = srv.createBooking(ctx, req)
	case "get_booking_contract":
		result, err = srv.getBookingContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func validBookingArgs() map[string]interface{} {
	return map[string]interface{}{
		"restaurant_slug": "vysota",
		"guest_name":      "Анна",
		"guest_phone":     "+7 999 123-45-67",
		"date":            time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"time":            "19:30",
		"guests_count":    float64(2),
	}
}

func TestSearchRestaurantsNoFilters(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "search_restaurants", map[string]interface{}{})
	text := resultText(res)
	for _, slug := range []string{"gnezdo", "vysota", "pech", "ugol"} {
		if !strings.Contains(text, slug) {
			t.Errorf("result missing %s:\n%s", slug, text)
		}
	}
	// Top-rated first.
	if strings.Index(text, "gnezdo") > strings.Index(text, "ugol") {
		t.Error("rating order lost in search output")
	}
}

func TestSearchRestaurantsFiltered(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "search_restaurants", map[string]interface{}{
		"category": "georgian",
		"price":    float64(3),
	})
	text := resultText(res)
	if !strings.Contains(text, "ugol") {
		t.Errorf("expected ugol:\n%s", text)
	}
	if strings.Contains(text, "pech") || strings.Contains(text, "vysota") {
		t.Errorf("filter leak:\n%s", text)
	}
}

func TestSearchRestaurantsQuery(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "search_restaurants", map[string]interface{}{
		"query": "СИДР",
	})
	text := resultText(res)
	if !strings.Contains(text, "pech") {
		t.Errorf("case-insensitive search failed:\n%s", text)
	}
}

func TestGetRestaurant(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "get_restaurant", map[string]interface{}{"slug": "pech"})
	text := resultText(res)
	if !strings.Contains(text, "Печь") || !strings.Contains(text, "₽₽") {
		t.Errorf("detail card incomplete:\n%s", text)
	}
}

func TestGetRestaurantMiss(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "get_restaurant", map[string]interface{}{"slug": "net-takogo"})
	if !res.IsError {
		t.Error("expected error result for unknown slug")
	}
}

func TestCreateAndListBookings(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "list_bookings", map[string]interface{}{})
	if resultText(res) != "no bookings" {
		t.Errorf("empty ledger: %q", resultText(res))
	}

	res = callTool(t, srv, "create_booking", validBookingArgs())
	if res.IsError {
		t.Fatalf("create_booking failed: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), "booked: b-") {
		t.Errorf("unexpected confirmation: %q", resultText(res))
	}

	res = callTool(t, srv, "list_bookings", map[string]interface{}{})
	text := resultText(res)
	if !strings.Contains(text, "Высота") || !strings.Contains(text, "2 guests") {
		t.Errorf("listing incomplete:\n%s", text)
	}
	if !strings.Contains(text, "pending") {
		t.Errorf("status missing:\n%s", text)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	srv := testServer(t)

	args := validBookingArgs()
	args["date"] = "2020-01-01"
	res := callTool(t, srv, "create_booking", args)
	if !res.IsError {
		t.Error("past date should be rejected")
	}

	args = validBookingArgs()
	delete(args, "guest_phone")
	res = callTool(t, srv, "create_booking", args)
	if !res.IsError {
		t.Error("missing phone should be rejected")
	}

	args = validBookingArgs()
	args["restaurant_slug"] = "net-takogo"
	res = callTool(t, srv, "create_booking", args)
	if !res.IsError {
		t.Error("unknown restaurant should be rejected")
	}
}

func TestBookingContract(t *testing.T) {
	srv := testServer(t)
	res := callTool(t, srv, "get_booking_contract", map[string]interface{}{})
	text := resultText(res)
	if !strings.Contains(text, "restaurant_slug") || !strings.Contains(text, "TOMORROW") {
		t.Errorf("contract incomplete:\n%s", text)
	}
}
