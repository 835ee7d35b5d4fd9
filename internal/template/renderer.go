// Package template renders the text/template files used to scaffold new
// astrodon projects.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Renderer renders Go text/templates with the astrodon function map.
type Renderer struct {
	funcMap template.FuncMap
}

// NewRenderer creates a Renderer with the standard function map.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: FuncMap(),
	}
}

// RenderFS reads a template from fsys and renders it with the given variables.
func (r *Renderer) RenderFS(fsys fs.FS, name string, vars map[string]any) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	return r.render(path.Base(name), string(data), vars)
}

// RenderString renders an inline template string with the given variables.
func (r *Renderer) RenderString(tmpl string, vars map[string]any) (string, error) {
	result, err := r.render("inline", tmpl, vars)
	if err != nil {
		return "", err
	}

	return string(result), nil
}

// RenderPath renders template expressions in a slash-separated file path,
// e.g. "{{ .name | kebabCase }}.desktop". Paths without expressions are
// returned unchanged.
func (r *Renderer) RenderPath(p string, vars map[string]any) (string, error) {
	if !strings.Contains(p, "{{") {
		return p, nil
	}

	result, err := r.RenderString(p, vars)
	if err != nil {
		return "", fmt.Errorf("rendering path %q: %w", p, err)
	}

	return result, nil
}

// StripTemplateExtension removes the .tmpl extension from a filename.
func StripTemplateExtension(p string) string {
	return strings.TrimSuffix(p, ".tmpl")
}

// IsTemplate returns true if the path ends with .tmpl.
func IsTemplate(p string) bool {
	return strings.HasSuffix(p, ".tmpl")
}

func (r *Renderer) render(name, text string, vars map[string]any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(r.funcMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.Bytes(), nil
}
