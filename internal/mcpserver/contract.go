package mcpserver

// BookingContract describes the booking request fields that LLM consumers
// must supply when calling create_booking.
const BookingContract = `# Gid Booking Request Contract

Every booking created through the create_booking tool MUST follow these rules.

## Required fields

- restaurant_slug — slug of an existing restaurant; take it from
  search_restaurants or get_restaurant output, never invent one.
- guest_name — guest full name, non-empty.
- guest_phone — contact phone, non-empty; any human-readable format is fine.
- date — calendar date as YYYY-MM-DD. Must be TOMORROW or later; same-day
  bookings are rejected.
- time — clock time as HH:MM (24h). Seconds are added automatically.
- guests_count — integer, at least 1.

## Optional fields

- guest_email — contact email.
- special_requests — free-form text (allergies, table preference, occasion).

## Semantics

- The booking is saved with status "pending" and is never confirmed or
  cancelled by this service; status transitions happen outside of it.
- The ledger is append-only: a saved booking cannot be edited or removed.
  Double-check the fields before calling create_booking.
- If the tool answers "saved for this session only", the booking exists in
  memory but could not be written to durable storage; warn the user that it
  will be lost when the service restarts.
`
