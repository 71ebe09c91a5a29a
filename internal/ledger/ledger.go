package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mosgid/gid/internal/apperr"
	"github.com/mosgid/gid/internal/models"
)

// Ledger is the append-only booking record store. Records are loaded once at
// open time and only ever appended after that; every successful append is
// synchronously persisted so that list-after-append always observes the new
// record, even if the process dies right after.
type Ledger struct {
	mu       sync.Mutex
	store    Store
	bookings []models.Booking
	now      func() time.Time
}

// Open loads the ledger from the store. Absent or corrupt storage degrades
// to an empty ledger: for a single-user local store that is indistinguishable
// from first use, so it is logged at debug level and not surfaced.
func Open(store Store, logger *slog.Logger) *Ledger {
	l := &Ledger{store: store, now: time.Now}

	data, err := store.Load()
	if err != nil {
		logger.Warn("ledger: load failed, starting empty", slog.String("error", err.Error()))
		return l
	}
	if len(data) == 0 {
		return l
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		logger.Debug("ledger: corrupt payload, starting empty", slog.String("error", err.Error()))
		return l
	}
	l.bookings = bookings
	return l
}

// Append adds one booking. Status is forced to pending and CreatedAt to the
// call time regardless of what the caller passed; the id is time-derived and
// bumped on collision so it stays unique within the ledger. Required-field
// validation is the caller's contract, not checked here.
//
// The returned booking is always the stored record. A non-nil error wraps
// apperr.ErrStorage and means the durable write failed: the record is still
// in memory for the rest of the session and must not be treated as lost.
func (l *Ledger) Append(b models.Booking) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b.Status = models.StatusPending
	b.CreatedAt = l.now()
	b.ID = l.nextIDLocked(b.CreatedAt)

	l.bookings = append(l.bookings, b)

	data, err := json.Marshal(l.bookings)
	if err != nil {
		return b, fmt.Errorf("ledger: marshal: %w (%w)", err, apperr.ErrStorage)
	}
	if err := l.store.Save(data); err != nil {
		return b, fmt.Errorf("ledger: persist: %w (%w)", err, apperr.ErrStorage)
	}
	return b, nil
}

// List returns the ledger in append order, oldest first. The returned slice
// is a copy; callers may not reach the internal state through it.
func (l *Ledger) List() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

// nextIDLocked derives an id from the creation time. Two appends within the
// same millisecond would collide, so the id is bumped until free.
func (l *Ledger) nextIDLocked(at time.Time) string {
	ms := at.UnixMilli()
	for {
		id := fmt.Sprintf("b-%d", ms)
		if !l.hasIDLocked(id) {
			return id
		}
		ms++
	}
}

func (l *Ledger) hasIDLocked(id string) bool {
	for _, b := range l.bookings {
		if b.ID == id {
			return true
		}
	}
	return false
}
