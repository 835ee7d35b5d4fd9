package template_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/astrodon/astrodon-cli/internal/template"
)

func TestFuncMap_Cases(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	tests := []struct {
		fn       string
		input    string
		expected string
	}{
		{"snakeCase", "MyProject", "my_project"},
		{"snakeCase", "my-astrodon-app", "my_astrodon_app"},
		{"snakeCase", "My App", "my_app"},
		{"kebabCase", "MyProject", "my-project"},
		{"kebabCase", "my_astrodon_app", "my-astrodon-app"},
		{"appID", "my-astrodon-app", "my_astrodon_app"},
		{"appID", "my app!", "my_app"},
		{"appID", "Café", "caf"},
		{"appID", "a:b", "ab"},
		{"appID", "-.notes", "notes"},
		{"appID", "!!!", "app"},
	}

	for _, tt := range tests {
		result, err := r.RenderString(`{{ `+tt.fn+` "`+tt.input+`" }}`, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result, "%s(%q)", tt.fn, tt.input)
	}
}

func TestFuncMap_Quote(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString(`{{ quote .v }}`, map[string]any{"v": `say "hi" \o/`})
	require.NoError(t, err)
	assert.Equal(t, `"say \"hi\" \\o/"`, result)
}

func TestFuncMap_Default(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString(`{{ .author | default "Anonymous" }}`, map[string]any{"author": ""})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", result)

	result, err = r.RenderString(`{{ .author | default "Anonymous" }}`, map[string]any{"author": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", result)
}

func TestFuncMap_Year(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString(`{{ year }}`, nil)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(time.Now().Year()), result)
}
