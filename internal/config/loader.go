package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format int

// Supported formats.
const (
	FormatYAML Format = iota
	FormatHCL
)

// FormatFor picks the format for a local path or URL from its extension.
// Anything that is not .hcl is treated as YAML.
func FormatFor(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && IsRemote(location) {
		p = u.Path
	}

	if strings.EqualFold(filepath.Ext(p), ".hcl") {
		return FormatHCL
	}

	return FormatYAML
}

// LoadFile reads, parses and validates the config file at path.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(data, path, FormatFor(path))
}

// Parse decodes and validates a config document. name is only used in
// error messages.
func Parse(data []byte, name string, format Format) (*AppConfig, error) {
	var (
		cfg *AppConfig
		err error
	)

	switch format {
	case FormatHCL:
		cfg, err = parseHCL(data, name)
	default:
		cfg, err = parseYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", name, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", name, err)
	}

	return cfg, nil
}

func parseYAML(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
