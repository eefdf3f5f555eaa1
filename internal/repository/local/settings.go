package local

import (
	"context"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
)

// SettingsRepository implements repository.SettingsRepository over the state
// store. Settings never leave the local machine.
type SettingsRepository struct {
	store storage.Store
}

// NewSettingsRepository creates a settings repository on the given store.
func NewSettingsRepository(store storage.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get loads the settings. Absent or malformed state loads as zero settings.
func (r *SettingsRepository) Get(ctx context.Context) (domain.StoreSettings, error) {
	var settings domain.StoreSettings
	if _, err := loadJSON(r.store, keySettings, &settings); err != nil {
		return domain.StoreSettings{}, err
	}
	return settings, nil
}

// Save persists the settings.
func (r *SettingsRepository) Save(ctx context.Context, settings domain.StoreSettings) error {
	return saveJSON(r.store, keySettings, settings)
}
