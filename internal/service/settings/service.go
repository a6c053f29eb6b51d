package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
)

// SettingsServiceImpl keeps the current settings in memory, loaded once at
// startup, and writes through to the local file on update. Callers always
// receive a snapshot value.
type SettingsServiceImpl struct {
	repo settings.SettingsRepository

	mu      sync.RWMutex
	current settings.Settings
}

func NewSettingsService(repo settings.SettingsRepository) (settings.SettingsService, error) {
	loaded, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &SettingsServiceImpl{repo: repo, current: loaded}, nil
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := req.Apply(s.current)
	if err := s.repo.Save(next); err != nil {
		return settings.Settings{}, err
	}
	s.current = next
	return next, nil
}

// Restore replaces the settings wholesale. Used by backup import.
func (s *SettingsServiceImpl) Restore(ctx context.Context, restored settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(restored); err != nil {
		return err
	}
	s.current = restored
	return nil
}
