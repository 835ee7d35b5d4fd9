// Package binary resolves the astrodon runtime executable for a given version,
// downloading it into a version-keyed local cache on first use.
package binary

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// DefaultReleaseURL is the base URL release assets are downloaded from.
const DefaultReleaseURL = "https://github.com/astrodon/astrodon/releases/download"

// Platform identifies a target operating system.
type Platform string

// Supported platforms.
const (
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// ErrUnsupportedPlatform is returned when no release asset exists for a platform.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Descriptor locates a release asset and names the file it is cached as.
type Descriptor struct {
	URL      string
	FileName string
}

type asset struct {
	remote string
	local  string
}

var assets = map[Platform]asset{
	Darwin:  {remote: "astrodon_darwin", local: "astrodon"},
	Linux:   {remote: "astrodon_linux", local: "astrodon"},
	Windows: {remote: "astrodon.exe", local: "astrodon.exe"},
}

// DetectPlatform returns the host platform.
func DetectPlatform() Platform {
	return Platform(runtime.GOOS)
}

// Platforms returns every platform the catalog has assets for.
func Platforms() []Platform {
	return []Platform{Darwin, Linux, Windows}
}

// Catalog maps (version, platform) pairs to release descriptors.
type Catalog struct {
	// BaseURL overrides DefaultReleaseURL.
	BaseURL string
}

// Lookup returns the descriptor for version on platform. An empty platform
// means the host platform.
func (c Catalog) Lookup(version string, platform Platform) (Descriptor, error) {
	if platform == "" {
		platform = DetectPlatform()
	}

	a, ok := assets[platform]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultReleaseURL
	}

	return Descriptor{
		URL:      strings.TrimSuffix(base, "/") + "/" + version + "/" + a.remote,
		FileName: a.local,
	}, nil
}

// Lookup resolves a descriptor against the default release URL.
func Lookup(version string, platform Platform) (Descriptor, error) {
	return Catalog{}.Lookup(version, platform)
}
