package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodon/astrodon-cli/internal/config"
)

func TestSettings_RoundTrip(t *testing.T) {
	t.Parallel()

	path := config.SettingsPath(filepath.Join(t.TempDir(), ".astrodon"))

	require.NoError(t, config.SaveSettings(path, &config.Settings{Version: "1.2.3", Toolchain: "canary"}))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", s.Version)
	assert.Equal(t, "canary", s.Toolchain)
}

func TestLoadSettings_NotFound(t *testing.T) {
	t.Parallel()

	s, err := config.LoadSettings("/nonexistent/settings.yaml")
	require.NoError(t, err)
	assert.Empty(t, s.Version)
	assert.Equal(t, "0.1.0", s.RuntimeVersion("0.1.0"))
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("{{invalid"), 0o644))

	_, err := config.LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")
}

func TestSettings_RuntimeVersion(t *testing.T) {
	t.Parallel()

	var nilSettings *config.Settings
	assert.Equal(t, "fallback", nilSettings.RuntimeVersion("fallback"))

	s := &config.Settings{Version: "2.0.0"}
	assert.Equal(t, "2.0.0", s.RuntimeVersion("fallback"))
}
