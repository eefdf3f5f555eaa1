package storage

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

// LevelDB is a Store backed by an embedded goleveldb database.
type LevelDB struct {
	db *leveldb.DB
}

// Open opens (or creates) the state database at the given directory.
func Open(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open state store at %s: %w", path, err)
	}
	return &LevelDB{db: db}, nil
}

// OpenMemory opens a Store on in-memory storage. Used by tests.
func OpenMemory() (*LevelDB, error) {
	db, err := leveldb.Open(ldbstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open in-memory state store: %w", err)
	}
	return &LevelDB{db: db}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *LevelDB) Get(key string) ([]byte, error) {
	value, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key.
func (s *LevelDB) Put(key string, value []byte) error {
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *LevelDB) Delete(key string) error {
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *LevelDB) Close() error {
	return s.db.Close()
}
