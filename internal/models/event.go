package models

// Event is one entry of the event catalog. The current build has no live
// event source, so these only ever come from an injected source (empty in
// production); the type and its formatting helpers are kept so the surface
// stays stable.
type Event struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	EventType        string `json:"event_type"`
	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	VenueName        string `json:"venue_name,omitempty"`
	Address          string `json:"address,omitempty"`
	DateStart        string `json:"date_start,omitempty"` // ISO-8601
	DateEnd          string `json:"date_end,omitempty"`
	IsFree           bool   `json:"is_free,omitempty"`
	PriceFrom        int    `json:"price_from,omitempty"`
	PriceTo          int    `json:"price_to,omitempty"`
	PhotoURL         string `json:"photo_url,omitempty"`
	TicketURL        string `json:"ticket_url,omitempty"`
}
