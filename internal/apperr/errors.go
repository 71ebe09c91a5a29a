package apperr

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrStorage marks a failed durable write whose in-memory effect still
	// holds. Callers surface it as a non-fatal notice, never a rollback.
	ErrStorage = errors.New("storage write failed")
)
