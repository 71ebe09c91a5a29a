// Package testutil provides shared test helpers for building catalogs and ledgers.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mosgid/gid/internal/catalog"
	"github.com/mosgid/gid/internal/ledger"
	"github.com/mosgid/gid/internal/models"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Restaurants returns a small fixture set covering the filter axes:
// categories, price tiers, Cyrillic tags, and featured flags.
func Restaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			Slug: "vysota", Name: "Высота", Category: "rooftop", PriceLevel: 3,
			Rating: 4.5, CuisineType: []string{"Европейская"},
			Tags: []string{"Крыша", "Вид"}, Address: "Тверская, 1",
			MetroStation: "Тверская", IsFeatured: true,
		},
		{
			Slug: "gnezdo", Name: "Гнездо", Category: "romantic", PriceLevel: 4,
			Rating: 4.9, CuisineType: []string{"Авторская"},
			Tags: []string{"Свидание"}, Address: "Арбат, 12",
			MetroStation: "Арбатская", IsFeatured: true,
		},
		{
			Slug: "pech", Name: "Печь", Category: "georgian", PriceLevel: 2,
			Rating: 4.5, CuisineType: []string{"Грузинская"},
			Tags: []string{"Сидр", "Для компании"}, Address: "Мясницкая, 3",
			MetroStation: "Чистые пруды",
			Description:  "Хинкали и сидр из Кахетии",
		},
		{
			Slug: "ugol", Name: "Угол", Category: "georgian", PriceLevel: 3,
			Rating: 4.1, CuisineType: []string{"Грузинская"},
			Tags: []string{"Банкеты"}, Address: "Пятницкая, 25",
		},
	}
}

// Engine returns a loaded catalog engine over the fixture set.
func Engine(t *testing.T) *catalog.Engine {
	t.Helper()
	e := catalog.NewEngine()
	e.Load(Restaurants())
	return e
}

// LedgerPath returns a temp file path for a ledger store.
func LedgerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bookings.json")
}

// FileLedger creates a ledger over a temp file store and returns both.
func FileLedger(t *testing.T) (*ledger.Ledger, *ledger.FileStore) {
	t.Helper()
	store, err := ledger.NewFileStore(LedgerPath(t))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return ledger.Open(store, DiscardLogger()), store
}
