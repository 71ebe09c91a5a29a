package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreAbsent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Errorf("data = %q, want nil for an absent file", data)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte(`[{"id":"b-1"}]`)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]byte(`first`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]byte(`second`)); err != nil {
		t.Fatal(err)
	}
	got, _ := store.Load()
	if string(got) != "second" {
		t.Errorf("got %q", got)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "bookings.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Save([]byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "bookings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".gid-ledger-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSQLiteStoreAbsent(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "gid.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Errorf("data = %q, want nil for a fresh database", data)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gid.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	want := []byte(`[{"id":"b-1"}]`)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(want); err != nil { // upsert path
		t.Fatalf("second Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gid.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]byte(`persisted`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	got, err := reopened.Load()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "persisted" {
		t.Errorf("got %q", got)
	}
}
