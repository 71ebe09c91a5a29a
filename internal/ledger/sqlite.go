package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const blobSchemaSQL = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// ledgerKey is the fixed key under which the serialized ledger lives.
const ledgerKey = "bookings"

// SQLiteStore implements Store on a single-row SQLite key/value table.
// Durability comes from SQLite's own journaling instead of rename tricks.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database and applies the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ledger: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ledger: ping: %w", err)
	}
	if _, err := conn.Exec(blobSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ledger: apply schema: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

// Load reads the ledger blob. A missing row means first use.
func (s *SQLiteStore) Load() ([]byte, error) {
	var data []byte
	err := s.conn.QueryRow(`SELECT data FROM blobs WHERE key = ?`, ledgerKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: load blob: %w", err)
	}
	return data, nil
}

// Save upserts the ledger blob.
func (s *SQLiteStore) Save(data []byte) error {
	_, err := s.conn.Exec(`
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			data       = excluded.data,
			updated_at = excluded.updated_at
	`, ledgerKey, data)
	if err != nil {
		return fmt.Errorf("ledger: save blob: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
