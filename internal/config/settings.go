package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the user-level settings file inside the cache root.
const SettingsFileName = "settings.yaml"

// Settings is the user-level state written by astrodon upgrade.
type Settings struct {
	// Version is the pinned runtime version.
	Version string `yaml:"version"`
	// Toolchain is the channel the pinned version was taken from.
	Toolchain string `yaml:"toolchain"`
}

// SettingsPath returns the settings file location for a cache root.
func SettingsPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, SettingsFileName)
}

// LoadSettings reads the settings file at path.
// If the file doesn't exist, it returns zero-value settings (no error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}

		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	return &s, nil
}

// SaveSettings writes s to path, creating the parent directory.
func SaveSettings(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // not secret
		return fmt.Errorf("writing settings %s: %w", path, err)
	}

	return nil
}

// RuntimeVersion returns the pinned version, or fallback when none is pinned.
func (s *Settings) RuntimeVersion(fallback string) string {
	if s == nil || s.Version == "" {
		return fallback
	}

	return s.Version
}
