// Package storage provides the flat key/value space that backs the client's
// persisted state: a handful of well-known keys, each holding a JSON blob,
// written whole on every mutation. Access is single-process; the last write
// wins.
package storage

import "errors"

// ErrKeyNotFound is returned when a key has never been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence contract the repositories build on.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}
