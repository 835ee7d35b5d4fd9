// Package driver hands an app config to the astrodon runtime executable,
// which does the actual running and packaging.
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/astrodon/astrodon-cli/internal/config"
)

// Driver runs or packages an app.
type Driver interface {
	Run(ctx context.Context, cfg *config.AppConfig) error
	Build(ctx context.Context, cfg *config.AppConfig) error
}

// Exec drives the downloaded runtime executable. The effective config is
// written to a JSON file and passed as
//
//	<binary> <run|build> --config <file> [main]
type Exec struct {
	// Binary is the path of the runtime executable.
	Binary string
	// WorkDir is where the executable runs. Empty means the current directory.
	WorkDir string
	// Stdin, Stdout and Stderr are attached to the executable.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Logger for debug output.
	Logger *slog.Logger
}

// New returns an Exec driver for binary wired to the process stdio.
func New(binary string, logger *slog.Logger) *Exec {
	return &Exec{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run starts the app in development mode and waits for it to exit.
func (e *Exec) Run(ctx context.Context, cfg *config.AppConfig) error {
	return e.invoke(ctx, "run", cfg)
}

// Build packages the app.
func (e *Exec) Build(ctx context.Context, cfg *config.AppConfig) error {
	return e.invoke(ctx, "build", cfg)
}

func (e *Exec) invoke(ctx context.Context, mode string, cfg *config.AppConfig) error {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dir, err := os.MkdirTemp("", "astrodon-driver-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir) //nolint:errcheck // best-effort cleanup

	cfgPath := filepath.Join(dir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling app config: %w", err)
	}

	if err := os.WriteFile(cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("writing app config: %w", err)
	}

	args := []string{mode, "--config", cfgPath}
	if cfg.Main != "" {
		args = append(args, cfg.Main)
	}

	logger.Debug("invoking runtime", "binary", e.Binary, "args", args)

	cmd := exec.CommandContext(ctx, e.Binary, args...) //nolint:gosec // binary comes from the version cache
	cmd.Dir = e.WorkDir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("astrodon %s: %w", mode, err)
	}

	return nil
}
