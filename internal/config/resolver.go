package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/astrodon/astrodon-cli/internal/getter"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// FileName is the config file looked up next to a project or remote script.
const FileName = "astrodon.yaml"

// ErrConfigNotFound means no config could be loaded and there was no script
// to fall back to, so there is nothing to run.
var ErrConfigNotFound = errors.New("no runnable config found")

// Options are the user-supplied config resolution options.
type Options struct {
	// ConfigPath is a local path or http(s) URL. Empty means the default file.
	ConfigPath string
	// Checksum is the expected sha256 of a remote config file. Optional.
	Checksum string
}

// Fetcher downloads a single remote file.
type Fetcher interface {
	FetchFile(ctx context.Context, src, dest string, opts getter.FetchOpts) error
}

// Resolver locates and loads an AppConfig.
type Resolver struct {
	// Fetcher retrieves remote config files. Defaults to a go-getter client.
	Fetcher Fetcher
	// WorkDir is where relative config paths are resolved. Defaults to the
	// process working directory.
	WorkDir string
	// Log reports fallbacks and failures to the user. Optional.
	Log *ui.Logger
	// Logger for debug output.
	Logger *slog.Logger
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Locate returns where the config for opts and scriptPath should be loaded from.
//
// An explicit remote config wins, then a config next to a remote script, then
// an explicit local path, then FileName in the working directory.
func (r *Resolver) Locate(opts Options, scriptPath string) (string, error) {
	if IsRemote(opts.ConfigPath) {
		return opts.ConfigPath, nil
	}

	if IsRemote(scriptPath) {
		return siblingURL(scriptPath)
	}

	wd, err := r.workDir()
	if err != nil {
		return "", err
	}

	if opts.ConfigPath != "" {
		if filepath.IsAbs(opts.ConfigPath) {
			return opts.ConfigPath, nil
		}

		return filepath.Join(wd, opts.ConfigPath), nil
	}

	return filepath.Join(wd, FileName), nil
}

// Resolve locates and loads the config.
//
// When scriptPath is set it always yields a config with Main set to
// scriptPath: a failed load falls back to DefaultAppConfig. Without a script,
// a failed load returns an error wrapping ErrConfigNotFound.
func (r *Resolver) Resolve(ctx context.Context, opts Options, scriptPath string) (*AppConfig, error) {
	logger := r.logger()

	location, err := r.Locate(opts, scriptPath)
	if err == nil {
		logger.Debug("loading config", "location", location)

		var cfg *AppConfig
		if cfg, err = r.load(ctx, location, opts.Checksum); err == nil {
			if scriptPath != "" {
				cfg.Main = scriptPath
			}

			return cfg, nil
		}
	}

	if scriptPath != "" {
		logger.Debug("config load failed, using default", "location", location, "err", err)
		r.info("Could not load config, using default config for", scriptPath)

		return DefaultAppConfig(scriptPath), nil
	}

	r.errorf("Could not find a config file at %s", location)

	return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
}

func (r *Resolver) load(ctx context.Context, location, checksum string) (*AppConfig, error) {
	if !IsRemote(location) {
		return LoadFile(location)
	}

	tmpDir, err := os.MkdirTemp("", "astrodon-config-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // best-effort cleanup

	dest := filepath.Join(tmpDir, "config"+filepath.Ext(location))

	if err := r.fetcher().FetchFile(ctx, location, dest, getter.FetchOpts{Checksum: checksum}); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(dest) //nolint:gosec // temp file we just wrote
	if err != nil {
		return nil, fmt.Errorf("reading fetched config %s: %w", location, err)
	}

	return Parse(data, location, FormatFor(location))
}

// siblingURL swaps the file name of a remote script for FileName.
func siblingURL(script string) (string, error) {
	u, err := url.Parse(script)
	if err != nil {
		return "", fmt.Errorf("parsing script url %s: %w", script, err)
	}

	dir := path.Dir(u.Path)
	if dir == "." {
		dir = "/"
	}

	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	u.Path = dir + FileName
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	return u.String(), nil
}

func (r *Resolver) workDir() (string, error) {
	if r.WorkDir != "" {
		return r.WorkDir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	return wd, nil
}

func (r *Resolver) fetcher() Fetcher {
	if r.Fetcher != nil {
		return r.Fetcher
	}

	return getter.New(r.logger())
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}

func (r *Resolver) info(args ...any) {
	if r.Log != nil {
		r.Log.Info(args...)
	}
}

func (r *Resolver) errorf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Errorf(format, args...)
	}
}
