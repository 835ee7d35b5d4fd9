package binary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/astrodon/astrodon-cli/internal/getter"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

// DownloadError reports a failed release download.
type DownloadError struct {
	URL    string
	Status string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s: %s", e.URL, e.Status)
}

// Request describes the binary to resolve.
type Request struct {
	// Version is the release to resolve.
	Version string
	// CacheRoot holds one directory per version.
	CacheRoot string
	// Platform is the target platform. Empty means the host.
	Platform Platform
}

// Fetcher downloads a single remote file.
type Fetcher interface {
	FetchFile(ctx context.Context, src, dest string, opts getter.FetchOpts) error
}

// Resolver turns a Request into a local executable path.
type Resolver struct {
	// Catalog maps versions to release assets.
	Catalog Catalog
	// Fetcher performs downloads. Defaults to a go-getter client.
	Fetcher Fetcher
	// Log receives cache hit and download events. Optional.
	Log *ui.Logger
	// Logger for debug output.
	Logger *slog.Logger
}

// Resolve returns the path of the cached executable for req, downloading it
// first if it is not cached yet. A file already present at the cache path is
// returned as-is.
func (r *Resolver) Resolve(ctx context.Context, req Request) (string, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	desc, err := r.Catalog.Lookup(req.Version, req.Platform)
	if err != nil {
		return "", err
	}

	versionDir := filepath.Join(req.CacheRoot, req.Version)
	binPath := filepath.Join(versionDir, desc.FileName)

	if info, err := os.Stat(binPath); err == nil {
		if !info.Mode().IsRegular() {
			return "", fmt.Errorf("cache path %s exists and is not a file", binPath)
		}

		logger.Debug("binary cache hit", "version", req.Version, "path", binPath)
		r.successf("binary found at %s", binPath)

		return binPath, nil
	}

	if err := os.MkdirAll(versionDir, 0o750); err != nil {
		return "", fmt.Errorf("creating cache directory %s: %w", versionDir, err)
	}

	r.successf("downloading %s", desc.URL)
	logger.Debug("downloading binary", "url", desc.URL, "dest", binPath)

	if err := r.download(ctx, desc.URL, binPath, logger); err != nil {
		return "", err
	}

	return binPath, nil
}

// badResponse matches the status error of go-getter's HTTP getter.
var badResponse = regexp.MustCompile(`bad response code: (\d{3})`)

// download fetches url into a scratch directory next to dest and renames the
// result onto dest, so dest never holds a partial or failed download.
func (r *Resolver) download(ctx context.Context, url, dest string, logger *slog.Logger) error {
	scratch, err := os.MkdirTemp(filepath.Dir(dest), ".download-")
	if err != nil {
		return fmt.Errorf("creating download directory for %s: %w", dest, err)
	}
	defer os.RemoveAll(scratch) //nolint:errcheck // no-op after a successful rename

	tmp := filepath.Join(scratch, filepath.Base(dest))

	fetcher := r.Fetcher
	if fetcher == nil {
		fetcher = getter.New(logger)
	}

	if err := fetcher.FetchFile(ctx, url, tmp, getter.FetchOpts{}); err != nil {
		return downloadError(url, err)
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}

	if info.Size() == 0 {
		return &DownloadError{URL: url, Status: "empty response body"}
	}

	r.successf("writing binary to %s", dest)

	if err := os.Chmod(tmp, 0o755); err != nil { //nolint:gosec // downloaded file is an executable
		return fmt.Errorf("marking %s executable: %w", dest, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("moving binary into %s: %w", dest, err)
	}

	return nil
}

// downloadError turns an HTTP status failure into a DownloadError and wraps
// anything else.
func downloadError(url string, err error) error {
	var dlErr *DownloadError
	if errors.As(err, &dlErr) {
		return err
	}

	m := badResponse.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}

	code, _ := strconv.Atoi(m[1])

	return &DownloadError{URL: url, Status: fmt.Sprintf("%d %s", code, http.StatusText(code))}
}

func (r *Resolver) successf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Successf(format, args...)
	}
}
