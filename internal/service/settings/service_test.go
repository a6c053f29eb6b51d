package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
	"github.com/asistapp/attendance-backend-go/internal/repository/localfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (settings.SettingsService, string) {
	path := filepath.Join(t.TempDir(), "settings.json")
	svc, err := NewSettingsService(localfile.NewSettingsRepository(path))
	require.NoError(t, err)
	return svc, path
}

func TestGet_DefaultsWhenNothingSaved(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), got)
	assert.Equal(t, "09:00", got.WorkStartTime)
	assert.Equal(t, 15, got.LateThresholdMinutes)
}

func TestUpdate_MergesProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	start := "08:30"
	threshold := 30
	got, err := svc.Update(ctx, settings.UpdateSettingsRequest{
		WorkStartTime:        &start,
		LateThresholdMinutes: &threshold,
	})
	require.NoError(t, err)

	assert.Equal(t, "08:30", got.WorkStartTime)
	assert.Equal(t, 30, got.LateThresholdMinutes)
	// Untouched fields keep their previous values.
	assert.Equal(t, settings.Defaults().Theme, got.Theme)
	assert.Equal(t, settings.Defaults().Locale, got.Locale)
}

func TestUpdate_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	svc, path := newTestService(t)

	theme := "dark"
	_, err := svc.Update(ctx, settings.UpdateSettingsRequest{Theme: &theme})
	require.NoError(t, err)

	// A fresh service over the same file sees the saved value.
	reloaded, err := NewSettingsService(localfile.NewSettingsRepository(path))
	require.NoError(t, err)
	got, err := reloaded.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
}

func TestUpdate_RejectsInvalidValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	bad := "25:99"
	_, err := svc.Update(ctx, settings.UpdateSettingsRequest{WorkStartTime: &bad})
	assert.Error(t, err)

	negative := -1
	_, err = svc.Update(ctx, settings.UpdateSettingsRequest{LateThresholdMinutes: &negative})
	assert.Error(t, err)

	theme := "sepia"
	_, err = svc.Update(ctx, settings.UpdateSettingsRequest{Theme: &theme})
	assert.Error(t, err)
}

func TestRestore_ReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	restored := settings.Settings{
		Theme:                "dark",
		WorkStartTime:        "10:00",
		LateThresholdMinutes: 5,
		Locale:               "en",
	}
	require.NoError(t, svc.Restore(ctx, restored))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, restored, got)
}
