// Package buildcmd implements astrodon build.
package buildcmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/astrodon/astrodon-cli/internal/binary"
	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/driver"
	"github.com/astrodon/astrodon-cli/internal/runcmd"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// Opts configures the build operation.
type Opts struct {
	// Entry is the app entry point.
	Entry string
	// Out, Name and Assets override the config's build settings when set.
	Out    string
	Name   string
	Assets string
	// Config selects the config file.
	Config config.Options

	// WorkDir anchors the build defaults.
	WorkDir string

	// Runtime is the runtime binary to build with.
	Runtime binary.Request

	Configs   runcmd.ConfigResolver
	Binaries  runcmd.BinaryResolver
	NewDriver func(binaryPath string) driver.Driver

	Log    *ui.Logger
	Logger *slog.Logger
}

// Defaults returns the entry point and build settings used when neither the
// command line nor the config file sets them.
func Defaults(workDir string) (string, config.BuildConfig) {
	return filepath.Join(workDir, "mod.ts"), config.BuildConfig{
		Out:    filepath.Join(workDir, "dist"),
		Name:   filepath.Base(workDir),
		Assets: filepath.Join(workDir, "renderer", "src"),
	}
}

// Run executes the build workflow and returns the effective config.
func Run(ctx context.Context, opts *Opts) (*config.AppConfig, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	defaultEntry, defaults := Defaults(opts.WorkDir)

	entry := opts.Entry
	if entry == "" {
		entry = defaultEntry
	}

	cfg, err := opts.Configs.Resolve(ctx, opts.Config, entry)
	if err != nil {
		return nil, err
	}

	cfg.Build = overlay(cfg.Build, opts, defaults)
	logger.Debug("build settings", "out", cfg.Build.Out, "name", cfg.Build.Name, "assets", cfg.Build.Assets)

	bin, err := opts.Binaries.Resolve(ctx, opts.Runtime)
	if err != nil {
		return nil, fmt.Errorf("resolving runtime %s: %w", opts.Runtime.Version, err)
	}

	opts.Log.Infof("building %s into %s", cfg.Build.Name, cfg.Build.Out)

	if err := opts.NewDriver(bin).Build(ctx, cfg); err != nil {
		return nil, err
	}

	opts.Log.Successf("built %s", cfg.Build.Name)

	return cfg, nil
}

// overlay applies command-line settings over the file's, then fills what is
// still empty from defaults.
func overlay(file config.BuildConfig, opts *Opts, defaults config.BuildConfig) config.BuildConfig {
	pick := func(cli, cfg, def string) string {
		switch {
		case cli != "":
			return cli
		case cfg != "":
			return cfg
		default:
			return def
		}
	}

	return config.BuildConfig{
		Out:    pick(opts.Out, file.Out, defaults.Out),
		Name:   pick(opts.Name, file.Name, defaults.Name),
		Assets: pick(opts.Assets, file.Assets, defaults.Assets),
		Icon:   file.Icon,
	}
}
