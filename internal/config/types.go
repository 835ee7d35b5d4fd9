// Package config handles astrodon project configuration: the app config file
// (YAML or HCL), its resolution from local or remote locations, permission
// overrides, and the user-level settings file.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AppConfig describes an astrodon application.
type AppConfig struct {
	Name             string      `yaml:"name" json:"name"`
	ID               string      `yaml:"id" json:"id"`
	Main             string      `yaml:"main" json:"main"`
	Version          string      `yaml:"version" json:"version"`
	Author           string      `yaml:"author" json:"author"`
	ShortDescription string      `yaml:"short_description" json:"short_description"`
	LongDescription  string      `yaml:"long_description" json:"long_description"`
	Homepage         string      `yaml:"homepage" json:"homepage"`
	Copyright        string      `yaml:"copyright" json:"copyright"`
	Permissions      Permissions `yaml:"permissions" json:"permissions"`
	Unstable         bool        `yaml:"unstable" json:"unstable"`
	Build            BuildConfig `yaml:"build" json:"build"`
}

// Permissions are the capabilities granted to the app at runtime.
type Permissions struct {
	AllowEnv    Allowlist `yaml:"allow_env" json:"allow_env"`
	AllowNet    Allowlist `yaml:"allow_net" json:"allow_net"`
	AllowFFI    Allowlist `yaml:"allow_ffi" json:"allow_ffi"`
	AllowRead   Allowlist `yaml:"allow_read" json:"allow_read"`
	AllowWrite  Allowlist `yaml:"allow_write" json:"allow_write"`
	AllowRun    Allowlist `yaml:"allow_run" json:"allow_run"`
	Prompt      bool      `yaml:"prompt" json:"prompt"`
	AllowHrtime bool      `yaml:"allow_hrtime" json:"allow_hrtime"`
}

// BuildConfig controls where and how the app is packaged.
type BuildConfig struct {
	Out    string `yaml:"out" json:"out"`
	Name   string `yaml:"name" json:"name"`
	Assets string `yaml:"assets" json:"assets"`
	Icon   string `yaml:"icon" json:"icon"`
}

// Allowlist is a list-valued permission. A nil Allowlist does not grant the
// capability; an empty non-nil one grants it without restriction; otherwise
// the capability is restricted to the listed entries.
//
// In config files the value may be a list, or a boolean where true means
// unrestricted and false means not granted.
type Allowlist []string

// Unrestricted returns an Allowlist that grants everything.
func Unrestricted() Allowlist {
	return Allowlist{}
}

// Granted reports whether the capability is granted at all.
func (a Allowlist) Granted() bool {
	return a != nil
}

// IsUnrestricted reports whether the capability is granted without restriction.
func (a Allowlist) IsUnrestricted() bool {
	return a != nil && len(a) == 0
}

// UnmarshalYAML accepts a sequence of strings or a boolean.
func (a *Allowlist) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var granted bool
		if err := node.Decode(&granted); err != nil {
			return fmt.Errorf("line %d: permission must be a boolean or a list", node.Line)
		}

		*a = nil
		if granted {
			*a = Unrestricted()
		}

		return nil
	case yaml.SequenceNode:
		items := []string{}
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*a = Allowlist(items)

		return nil
	default:
		return fmt.Errorf("line %d: permission must be a boolean or a list", node.Line)
	}
}

// DefaultAppConfig is used when a script is run without a config file.
// It grants no permissions.
func DefaultAppConfig(main string) *AppConfig {
	return &AppConfig{
		Name:             "Astrodon App",
		ID:               "astrodon_app",
		Main:             main,
		Version:          "0.1.0",
		Author:           "Astrodon",
		ShortDescription: "An Astrodon app",
		LongDescription:  "A desktop app built with Astrodon",
		Homepage:         "https://astrodon.github.io",
		Copyright:        "Astrodon",
		Unstable:         true,
	}
}
