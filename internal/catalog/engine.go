// Package catalog implements the restaurant filter/search engine. It holds
// the canonical rating-sorted list and the current filter state, and
// recomputes the visible subset on demand.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mosgid/gid/internal/apperr"
	"github.com/mosgid/gid/internal/models"
)

// CategoryAll disables the category predicate.
const CategoryAll = "all"

// DefaultFeaturedLimit caps the featured strip.
const DefaultFeaturedLimit = 5

// Filter is the current predicate set. The three fields are ANDed; each one
// is independently resettable (CategoryAll / 0 / "").
type Filter struct {
	Category   string
	PriceLevel int
	Query      string
}

// Engine owns the canonical restaurant list. The list is sorted once at load
// time by rating descending (stable, ties keep dataset order) and never
// reordered by filtering.
type Engine struct {
	mu     sync.RWMutex
	all    []models.Restaurant
	bySlug map[string]int
	filter Filter
}

// NewEngine returns an empty engine with no active filters.
func NewEngine() *Engine {
	return &Engine{
		bySlug: map[string]int{},
		filter: Filter{Category: CategoryAll},
	}
}

// Load replaces the canonical list. Records without an id get a positional
// one ("r-<index>", stable only for this load order) before sorting. The
// previous filter state is kept.
func (e *Engine) Load(records []models.Restaurant) {
	all := make([]models.Restaurant, len(records))
	copy(all, records)
	for i := range all {
		if all[i].ID == "" {
			all[i].ID = fmt.Sprintf("r-%d", i)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rating > all[j].Rating
	})

	bySlug := make(map[string]int, len(all))
	for i, r := range all {
		bySlug[r.Slug] = i
	}

	e.mu.Lock()
	e.all = all
	e.bySlug = bySlug
	e.mu.Unlock()
}

// Len returns the canonical list size.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.all)
}

// SetCategory replaces the category predicate. CategoryAll disables it.
func (e *Engine) SetCategory(category string) {
	e.mu.Lock()
	e.filter.Category = category
	e.mu.Unlock()
}

// SetPriceLevel replaces the price predicate. 0 disables it.
func (e *Engine) SetPriceLevel(level int) {
	e.mu.Lock()
	e.filter.PriceLevel = level
	e.mu.Unlock()
}

// SetQuery replaces the search predicate. "" disables it.
func (e *Engine) SetQuery(query string) {
	e.mu.Lock()
	e.filter.Query = query
	e.mu.Unlock()
}

// Filter returns a snapshot of the current predicate set.
func (e *Engine) Filter() Filter {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filter
}

// Visible recomputes the subset matching the current filter state, in
// canonical order. An empty result is a normal outcome.
func (e *Engine) Visible() []models.Restaurant {
	return e.VisibleWith(e.Filter())
}

// VisibleWith applies an explicit filter without touching the stored state.
// Used by request-scoped callers that pass predicates per call.
func (e *Engine) VisibleWith(f Filter) []models.Restaurant {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Restaurant, 0, len(e.all))
	for _, r := range e.all {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// Featured returns the first limit featured records in canonical order,
// independent of the active filter state. limit <= 0 applies the default.
func (e *Engine) Featured(limit int) []models.Restaurant {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Restaurant, 0, limit)
	for _, r := range e.all {
		if !r.IsFeatured {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FindBySlug looks up one record for a detail view. A miss returns
// apperr.ErrNotFound and is a normal outcome, not a failure.
func (e *Engine) FindBySlug(slug string) (models.Restaurant, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.bySlug[slug]
	if !ok {
		return models.Restaurant{}, apperr.ErrNotFound
	}
	return e.all[i], nil
}

// matches applies the three ANDed predicates. The search predicate is
// OR-combined across fields within itself: a record passes when any of
// name, description, metro station, address, cuisine entry, or tag contains
// the query, case-insensitively.
func matches(r models.Restaurant, f Filter) bool {
	if f.Category != "" && f.Category != CategoryAll && r.Category != f.Category {
		return false
	}
	if f.PriceLevel != 0 && r.PriceLevel != f.PriceLevel {
		return false
	}
	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.MetroStation), q) ||
		strings.Contains(strings.ToLower(r.Address), q) {
		return true
	}
	for _, c := range r.CuisineType {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
