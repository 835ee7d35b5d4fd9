package template_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/astrodon/astrodon-cli/internal/template"
)

func TestRenderString(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString("Hello {{ .name }}", map[string]any{"name": "world"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", result)
}

func TestRenderString_MissingKey(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	_, err := r.RenderString("Hello {{ .missing }}", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing template")
}

func TestRenderString_InvalidTemplate(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	_, err := r.RenderString("{{ invalid", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template")
}

func TestRenderFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"default/astrodon.yaml.tmpl": {Data: []byte("name: {{ quote .name }}\n")},
	}

	r := tmpl.NewRenderer()

	result, err := r.RenderFS(fsys, "default/astrodon.yaml.tmpl", map[string]any{"name": "My App"})
	require.NoError(t, err)
	assert.Equal(t, "name: \"My App\"\n", string(result))
}

func TestRenderFS_NotFound(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	_, err := r.RenderFS(fstest.MapFS{}, "missing.tmpl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template")
}

func TestRenderPath(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	tests := []struct {
		name     string
		path     string
		vars     map[string]any
		expected string
	}{
		{
			name:     "no template expressions",
			path:     "renderer/src/index.html",
			vars:     nil,
			expected: "renderer/src/index.html",
		},
		{
			name:     "name in path",
			path:     "{{ .name | kebabCase }}.desktop",
			vars:     map[string]any{"name": "My App"},
			expected: "my-app.desktop",
		},
		{
			name:     "multiple expressions",
			path:     "{{ .dir }}/{{ .file }}",
			vars:     map[string]any{"dir": "renderer", "file": "index.html"},
			expected: "renderer/index.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := r.RenderPath(tt.path, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStripTemplateExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mod.ts", tmpl.StripTemplateExtension("mod.ts.tmpl"))
	assert.Equal(t, "mod.ts", tmpl.StripTemplateExtension("mod.ts"))
	assert.Equal(t, ".gitignore", tmpl.StripTemplateExtension(".gitignore.tmpl"))
}

func TestIsTemplate(t *testing.T) {
	t.Parallel()

	assert.True(t, tmpl.IsTemplate("mod.ts.tmpl"))
	assert.True(t, tmpl.IsTemplate(".gitignore.tmpl"))
	assert.False(t, tmpl.IsTemplate("mod.ts"))
	assert.False(t, tmpl.IsTemplate("icon.png"))
}
