package binary

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	version "github.com/hashicorp/go-version"
	homedir "github.com/mitchellh/go-homedir"
)

// DefaultCacheRoot returns the directory binaries are cached under:
// $APPDATA/.astrodon, falling back to the home directory, then the working
// directory.
func DefaultCacheRoot() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		if home, err := homedir.Dir(); err == nil {
			base = home
		}
	}

	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}

	return filepath.Join(base, ".astrodon")
}

// ExpandRoot expands a leading ~ in a user-supplied cache root. An empty
// root yields DefaultCacheRoot.
func ExpandRoot(root string) (string, error) {
	if root == "" {
		return DefaultCacheRoot(), nil
	}

	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", fmt.Errorf("expanding cache root %s: %w", root, err)
	}

	return expanded, nil
}

// CachedVersion is a version directory found in the cache.
type CachedVersion struct {
	Version string
	Path    string
	Size    int64
}

// Versions lists the versions cached under root. Semantic versions come first
// in ascending order, anything else follows lexically. A missing root yields
// no versions.
func Versions(root string) ([]CachedVersion, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading cache root %s: %w", root, err)
	}

	var result []CachedVersion

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		dir := filepath.Join(root, e.Name())

		size, err := dirSize(dir)
		if err != nil {
			return nil, err
		}

		result = append(result, CachedVersion{Version: e.Name(), Path: dir, Size: size})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return versionLess(result[i].Version, result[j].Version)
	})

	return result, nil
}

// Clean removes a cached version, or every cached version when v is empty.
// It returns the number of bytes freed.
func Clean(root, v string) (int64, error) {
	cached, err := Versions(root)
	if err != nil {
		return 0, err
	}

	var freed int64

	for _, c := range cached {
		if v != "" && c.Version != v {
			continue
		}

		if err := os.RemoveAll(c.Path); err != nil {
			return freed, fmt.Errorf("removing %s: %w", c.Path, err)
		}

		freed += c.Size
	}

	return freed, nil
}

func versionLess(a, b string) bool {
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)

	switch {
	case errA == nil && errB == nil:
		return va.LessThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func dirSize(path string) (int64, error) {
	var size int64

	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}

			size += info.Size()
		}

		return nil
	})

	return size, err
}
