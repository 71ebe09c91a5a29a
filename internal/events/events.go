// Package events holds the event catalog. The UI surface for events exists,
// but no live data source is wired in this build: the production source is
// the null source and the catalog stays empty. The filtering path is kept
// working so an injected source (tests, future feeds) needs no other change.
package events

import (
	"sync"

	"github.com/mosgid/gid/internal/models"
)

// TypeAll disables the event-type predicate.
const TypeAll = "all"

// Source supplies the event list at load time.
type Source interface {
	Events() ([]models.Event, error)
}

// NullSource is the production source: always empty, never fails.
type NullSource struct{}

// Events returns no events.
func (NullSource) Events() ([]models.Event, error) { return nil, nil }

// Catalog holds the loaded events and the current type filter.
type Catalog struct {
	mu        sync.RWMutex
	all       []models.Event
	eventType string
}

// NewCatalog loads events from the source. A failing source degrades to an
// empty catalog; the error is returned so the caller can log it.
func NewCatalog(src Source) (*Catalog, error) {
	c := &Catalog{eventType: TypeAll}
	evs, err := src.Events()
	if err != nil {
		return c, err
	}
	c.all = evs
	return c, nil
}

// SetType replaces the event-type predicate. TypeAll disables it.
func (c *Catalog) SetType(eventType string) {
	c.mu.Lock()
	c.eventType = eventType
	c.mu.Unlock()
}

// Visible returns events matching the current type filter, in load order.
func (c *Catalog) Visible() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filtered(c.eventType)
}

// VisibleWith applies an explicit type filter without touching stored state.
func (c *Catalog) VisibleWith(eventType string) []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filtered(eventType)
}

// Len returns the loaded event count.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.all)
}

func (c *Catalog) filtered(eventType string) []models.Event {
	out := make([]models.Event, 0, len(c.all))
	for _, e := range c.all {
		if eventType != "" && eventType != TypeAll && e.EventType != eventType {
			continue
		}
		out = append(out, e)
	}
	return out
}
