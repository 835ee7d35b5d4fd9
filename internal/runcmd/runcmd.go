// Package runcmd implements astrodon run: resolve the app config, apply
// permission flags, fetch the runtime and hand the app to it.
package runcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/astrodon/astrodon-cli/internal/binary"
	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/driver"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// ConfigResolver loads the app config.
type ConfigResolver interface {
	Resolve(ctx context.Context, opts config.Options, scriptPath string) (*config.AppConfig, error)
}

// BinaryResolver returns the local path of the runtime executable.
type BinaryResolver interface {
	Resolve(ctx context.Context, req binary.Request) (string, error)
}

// Opts configures the run operation.
type Opts struct {
	// Script is the entry script. Empty means the config's main.
	Script string
	// Config selects the config file.
	Config config.Options
	// Permissions are the command-line permission overrides.
	Permissions config.PermissionFlags

	// Runtime is the runtime binary to run with.
	Runtime binary.Request

	Configs  ConfigResolver
	Binaries BinaryResolver
	// NewDriver builds the driver for a resolved runtime binary.
	NewDriver func(binaryPath string) driver.Driver

	// Log reports progress to the user.
	Log *ui.Logger
	// Logger for debug output.
	Logger *slog.Logger
}

// Result holds the output of a run.
type Result struct {
	Config *config.AppConfig
	Binary string
}

// Run executes the run workflow. When there is neither a config nor a script
// it returns an error wrapping config.ErrConfigNotFound without starting the
// runtime.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := opts.Configs.Resolve(ctx, opts.Config, opts.Script)
	if err != nil {
		return nil, err
	}

	cfg.Permissions = config.MergePermissions(cfg.Permissions, opts.Permissions)
	logger.Debug("effective permissions", "permissions", fmt.Sprintf("%+v", cfg.Permissions))

	bin, err := opts.Binaries.Resolve(ctx, opts.Runtime)
	if err != nil {
		return nil, fmt.Errorf("resolving runtime %s: %w", opts.Runtime.Version, err)
	}

	opts.Log.Successf("executing %s", bin)

	if err := opts.NewDriver(bin).Run(ctx, cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Binary: bin}, nil
}
