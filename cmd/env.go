package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/astrodon/astrodon-cli/internal/binary"
	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/driver"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// cacheRoot returns the runtime cache directory selected by --cache-dir.
func cacheRoot() (string, error) {
	root, err := binary.ExpandRoot(cacheDir)
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}

	return root, nil
}

// runtimeRequest selects the runtime pinned by astrodon upgrade, or the
// version this CLI was released with.
func runtimeRequest() (binary.Request, error) {
	root, err := cacheRoot()
	if err != nil {
		return binary.Request{}, err
	}

	settings, err := config.LoadSettings(config.SettingsPath(root))
	if err != nil {
		return binary.Request{}, err
	}

	return binary.Request{
		Version:   settings.RuntimeVersion(runtimeVersion),
		CacheRoot: root,
	}, nil
}

func newLog(module string) *ui.Logger {
	return ui.NewLogger(module, noColor)
}

func binaryResolver(log *ui.Logger) *binary.Resolver {
	return &binary.Resolver{
		Catalog: binary.Catalog{BaseURL: releaseURL},
		Log:     log,
		Logger:  slog.Default(),
	}
}

func configResolver(log *ui.Logger) (*config.Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	return &config.Resolver{
		WorkDir: wd,
		Log:     log,
		Logger:  slog.Default(),
	}, nil
}

func newDriver(bin string) driver.Driver {
	return driver.New(bin, slog.Default())
}
