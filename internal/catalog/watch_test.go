package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeDataset(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.json")
	writeDataset(t, path, `[{"slug": "a", "name": "A"}]`)

	engine := NewEngine()
	records, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	engine.Load(records)

	var reloaded atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		defer close(done)
		_ = Watch(ctx, engine, path, logger, func(count int) {
			reloaded.Store(int64(count))
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	writeDataset(t, path, `[{"slug": "a", "name": "A"}, {"slug": "b", "name": "B"}]`)

	deadline := time.After(3 * time.Second)
	for reloaded.Load() != 2 {
		select {
		case <-deadline:
			t.Fatalf("reload callback not fired, engine has %d records", engine.Len())
		case <-time.After(50 * time.Millisecond):
		}
	}
	if engine.Len() != 2 {
		t.Errorf("engine len = %d, want 2", engine.Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatchKeepsCatalogOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.json")
	writeDataset(t, path, `[{"slug": "a", "name": "A"}]`)

	engine := NewEngine()
	records, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	engine.Load(records)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		_ = Watch(ctx, engine, path, logger, nil)
	}()

	time.Sleep(200 * time.Millisecond)
	writeDataset(t, path, `{broken`)
	time.Sleep(600 * time.Millisecond)

	if engine.Len() != 1 {
		t.Errorf("engine len = %d, want previous catalog kept", engine.Len())
	}
	r, err := engine.FindBySlug("a")
	if err != nil || r.Name != "A" {
		t.Errorf("previous record lost: %+v, %v", r, err)
	}
}
