package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mosgid/gid/internal/models"
)

// Default dataset, compiled into the binary so the service works with no
// external files. A config-supplied path overrides it.
//
//go:embed data/restaurants.json
var embeddedDataset []byte

// LoadEmbedded parses the compiled-in dataset.
func LoadEmbedded() ([]models.Restaurant, error) {
	return ParseDataset(embeddedDataset)
}

// LoadFile reads and parses a dataset file.
func LoadFile(path string) ([]models.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read dataset: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a JSON array of restaurants and checks the slug
// uniqueness invariant. Any violation makes the whole dataset malformed;
// the caller degrades to an empty catalog instead of loading half of it.
func ParseDataset(data []byte) ([]models.Restaurant, error) {
	var records []models.Restaurant
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("catalog: parse dataset: %w", err)
	}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.Slug == "" {
			return nil, fmt.Errorf("catalog: record %q has no slug", r.Name)
		}
		if _, dup := seen[r.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q", r.Slug)
		}
		seen[r.Slug] = struct{}{}
	}
	return records, nil
}
