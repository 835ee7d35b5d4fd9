package config

import (
	"fmt"
	"regexp"
	"strings"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Validate checks an AppConfig for required fields and valid values.
func Validate(cfg *AppConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("app name is required")
	}

	if cfg.ID != "" && !validID.MatchString(cfg.ID) {
		return fmt.Errorf("invalid app id %q, must match %s", cfg.ID, validID)
	}

	for name, list := range map[string]Allowlist{
		"allow_env":   cfg.Permissions.AllowEnv,
		"allow_net":   cfg.Permissions.AllowNet,
		"allow_ffi":   cfg.Permissions.AllowFFI,
		"allow_read":  cfg.Permissions.AllowRead,
		"allow_write": cfg.Permissions.AllowWrite,
		"allow_run":   cfg.Permissions.AllowRun,
	} {
		for i, entry := range list {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("permissions.%s[%d]: entry must not be empty", name, i)
			}
		}
	}

	return nil
}
