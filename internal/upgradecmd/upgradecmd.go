// Package upgradecmd implements astrodon upgrade: fetch a runtime version
// into the cache and pin it for later runs and builds.
package upgradecmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/astrodon/astrodon-cli/internal/binary"
	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/runcmd"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// Opts configures the upgrade operation.
type Opts struct {
	// Toolchain is the release channel, recorded alongside the pinned version.
	Toolchain string
	// Version is the runtime version to pin.
	Version string
	// CacheRoot is where binaries and settings live.
	CacheRoot string
	// Platform is the target platform. Empty means the host.
	Platform binary.Platform

	Binaries runcmd.BinaryResolver
	Log      *ui.Logger
}

// Result holds the output of a successful upgrade.
type Result struct {
	Settings config.Settings
	Binary   string
}

// Run downloads the requested runtime and writes it to the settings file.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	if strings.TrimSpace(opts.Toolchain) == "" {
		return nil, fmt.Errorf("toolchain must not be empty")
	}

	if strings.TrimSpace(opts.Version) == "" {
		return nil, fmt.Errorf("version must not be empty")
	}

	bin, err := opts.Binaries.Resolve(ctx, binary.Request{
		Version:   opts.Version,
		CacheRoot: opts.CacheRoot,
		Platform:  opts.Platform,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching runtime %s: %w", opts.Version, err)
	}

	settings := config.Settings{Version: opts.Version, Toolchain: opts.Toolchain}
	if err := config.SaveSettings(config.SettingsPath(opts.CacheRoot), &settings); err != nil {
		return nil, err
	}

	opts.Log.Successf("using astrodon %s (%s)", opts.Version, opts.Toolchain)

	return &Result{Settings: settings, Binary: bin}, nil
}
