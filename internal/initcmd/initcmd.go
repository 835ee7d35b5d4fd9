// Package initcmd implements the astrodon init command for scaffolding new
// projects from embedded templates.
package initcmd

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/astrodon/astrodon-cli/internal/config"
	tmpl "github.com/astrodon/astrodon-cli/internal/template"
)

// DefaultTemplate is the template used when none is given.
const DefaultTemplate = "default"

// DefaultName is the project name used when none is given.
const DefaultName = "my-astrodon-app"

//go:embed all:templates
var templates embed.FS

// Opts configures the init operation.
type Opts struct {
	// Template names an embedded template set. Empty means DefaultTemplate.
	Template string
	// Name is the project name. Empty means DefaultName.
	Name string
	// Author is written into the generated config.
	Author string
	// Dir is the target directory. Empty means WorkDir/Name.
	Dir string
	// WorkDir anchors a relative or empty Dir. Empty means the current directory.
	WorkDir string
	Logger  *slog.Logger
}

// Templates returns the names of the embedded template sets.
func Templates() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	return names
}

// Run scaffolds a new project and returns the directory it was written to.
func Run(opts *Opts) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	tmplName := opts.Template
	if tmplName == "" {
		tmplName = DefaultTemplate
	}

	if !slices.Contains(Templates(), tmplName) {
		return "", fmt.Errorf("unknown template %q (available: %s)", tmplName, strings.Join(Templates(), ", "))
	}

	dir, err := targetDir(opts, name)
	if err != nil {
		return "", err
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return "", fmt.Errorf("%s already exists at %s", config.FileName, cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	sub, err := fs.Sub(templates, "templates/"+tmplName)
	if err != nil {
		return "", fmt.Errorf("opening template %s: %w", tmplName, err)
	}

	vars := map[string]any{
		"name":   name,
		"author": opts.Author,
	}

	logger.Debug("rendering template", "template", tmplName, "dir", dir)

	if err := render(sub, dir, vars, logger); err != nil {
		return "", err
	}

	return dir, nil
}

func targetDir(opts *Opts, name string) (string, error) {
	wd := opts.WorkDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
	}

	dir := opts.Dir
	if dir == "" {
		dir = name
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(wd, dir)
	}

	return dir, nil
}

func render(fsys fs.FS, dir string, vars map[string]any, logger *slog.Logger) error {
	r := tmpl.NewRenderer()

	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		outPath, err := r.RenderPath(p, vars)
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, filepath.FromSlash(tmpl.StripTemplateExtension(outPath)))

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o750); err != nil {
				return fmt.Errorf("creating directory %s: %w", dest, err)
			}

			return nil
		}

		var data []byte
		if tmpl.IsTemplate(p) {
			data, err = r.RenderFS(fsys, p, vars)
		} else {
			data, err = fs.ReadFile(fsys, p)
		}

		if err != nil {
			return err
		}

		logger.Debug("writing file", "path", dest)

		if err := os.WriteFile(dest, data, 0o644); err != nil { //nolint:gosec // project files are meant to be readable
			return fmt.Errorf("writing %s: %w", dest, err)
		}

		return nil
	})
}
