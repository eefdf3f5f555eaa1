// Package local implements the repositories over the embedded state store,
// mirroring the key layout the browser storefront kept in local storage.
package local

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
)

// Well-known state keys.
const (
	keyCart     = "cart"
	keyWishlist = "wishlist"
	keyToken    = "token"
	keyUser     = "user"
	keySettings = "storeSettings"
)

// loadJSON decodes the value under key into dst. An absent key or a value
// that fails to decode leaves dst untouched and reports false; the caller
// starts from its zero state. Only real store failures surface as errors.
func loadJSON(store storage.Store, key string, dst any) (bool, error) {
	raw, err := store.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// Corrupt state is treated as absent, never surfaced.
		return false, nil
	}
	return true, nil
}

// saveJSON encodes value and writes it whole under key.
func saveJSON(store storage.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := store.Put(key, raw); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
