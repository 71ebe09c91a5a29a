// Package ledger implements the append-only booking ledger and its
// single-key blob persistence port.
package ledger

// Store persists the serialized ledger under one fixed key. The whole blob
// is overwritten on every save; the ledger stays small (single user) so no
// incremental writes are needed.
type Store interface {
	// Load returns the stored blob, or (nil, nil) when nothing has been
	// saved yet.
	Load() ([]byte, error)
	// Save atomically replaces the stored blob.
	Save(data []byte) error
}
