package storage

import "errors"

// ErrNotFound is returned when no document exists under a key.
var ErrNotFound = errors.New("document not found")

// Store is the persistence port for client-side documents (carts, order
// history). Implementations must treat Set as a full-document replace.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
