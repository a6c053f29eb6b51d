// Package localfile persists settings to a JSON file next to the process,
// the server-side equivalent of the browser's localStorage preferences.
package localfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
)

type settingsRepositoryImpl struct {
	path string
	mu   sync.Mutex
}

func NewSettingsRepository(path string) settings.SettingsRepository {
	return &settingsRepositoryImpl{path: path}
}

// Load implements settings.SettingsRepository. A missing file means nothing
// has been saved yet and yields the defaults.
func (r *settingsRepositoryImpl) Load() (settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := settings.Defaults()
	if err := json.Unmarshal(raw, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", r.path, err)
	}
	return s, nil
}

// Save implements settings.SettingsRepository. Written via a temp file and
// rename so a crash mid-write cannot leave a torn file.
func (r *settingsRepositoryImpl) Save(s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create settings temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close settings temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
