package settings

import "context"

// SettingsService exposes settings to the API and hands classification its
// configuration snapshot.
type SettingsService interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)

	// Restore replaces the settings wholesale; used by backup import
	Restore(ctx context.Context, restored Settings) error
}
