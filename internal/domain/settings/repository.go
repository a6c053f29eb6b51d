package settings

// SettingsRepository persists settings locally. There is no remote
// persistence for settings.
type SettingsRepository interface {
	// Load returns the stored settings, or Defaults() when nothing has been
	// saved yet
	Load() (Settings, error)

	// Save replaces the stored settings
	Save(s Settings) error
}
