package initcmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/initcmd"
)

func TestRun_Default(t *testing.T) {
	t.Parallel()

	wd := t.TempDir()

	dir, err := initcmd.Run(&initcmd.Opts{WorkDir: wd})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, initcmd.DefaultName), dir)

	assert.FileExists(t, filepath.Join(dir, "astrodon.yaml"))
	assert.FileExists(t, filepath.Join(dir, "mod.ts"))
	assert.FileExists(t, filepath.Join(dir, "renderer", "src", "index.html"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(dir, "mod.ts.tmpl"))

	cfg, err := config.LoadFile(filepath.Join(dir, "astrodon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "my-astrodon-app", cfg.Name)
	assert.Equal(t, "com.astrodon.my_astrodon_app", cfg.ID)
	assert.Equal(t, "mod.ts", cfg.Main)
	assert.Equal(t, "my-astrodon-app", cfg.Build.Name)
	assert.True(t, cfg.Permissions.AllowRead.IsUnrestricted())
	assert.False(t, cfg.Permissions.AllowNet.Granted())
}

func TestRun_NameAndDir(t *testing.T) {
	t.Parallel()

	wd := t.TempDir()

	dir, err := initcmd.Run(&initcmd.Opts{
		Name:    "Notes App",
		Author:  "Ada",
		Dir:     "notes",
		WorkDir: wd,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "notes"), dir)

	cfg, err := config.LoadFile(filepath.Join(dir, "astrodon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Notes App", cfg.Name)
	assert.Equal(t, "com.astrodon.notes_app", cfg.ID)
	assert.Equal(t, "Ada", cfg.Author)
	assert.Equal(t, "notes-app", cfg.Build.Name)
	assert.Contains(t, cfg.Copyright, "Ada")
}

func TestRun_NamesYieldValidIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wantID string
	}{
		{name: "my app!", wantID: "com.astrodon.my_app"},
		{name: "Café", wantID: "com.astrodon.caf"},
		{name: "a:b", wantID: "com.astrodon.ab"},
		{name: "???", wantID: "com.astrodon.app"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, template := range initcmd.Templates() {
				dir, err := initcmd.Run(&initcmd.Opts{Template: template, Name: tt.name, Dir: t.TempDir()})
				require.NoError(t, err)

				cfg, err := config.LoadFile(filepath.Join(dir, "astrodon.yaml"))
				require.NoError(t, err, "template %s", template)
				assert.Equal(t, tt.name, cfg.Name)

				if template == initcmd.DefaultTemplate {
					assert.Equal(t, tt.wantID, cfg.ID)
				}
			}
		})
	}
}

func TestRun_EscapesNameInHTML(t *testing.T) {
	t.Parallel()

	dir, err := initcmd.Run(&initcmd.Opts{Name: `<b>Tom & "Jerry"</b>`, Dir: t.TempDir()})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "renderer", "src", "index.html"))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<title>&lt;b&gt;Tom &amp; &#34;Jerry&#34;&lt;/b&gt;</title>")
	assert.NotContains(t, html, "<b>Tom")
}

func TestRun_Minimal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := initcmd.Run(&initcmd.Opts{Template: "minimal", Name: "tiny", Dir: dir})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "mod.ts"))
	assert.NoDirExists(t, filepath.Join(dir, "renderer"))

	cfg, err := config.LoadFile(filepath.Join(dir, "astrodon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.ID)
}

func TestRun_Duplicate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := &initcmd.Opts{Dir: dir}

	_, err := initcmd.Run(opts)
	require.NoError(t, err)

	_, err = initcmd.Run(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_UnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := initcmd.Run(&initcmd.Opts{Template: "react", Dir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "react"`)
	assert.Contains(t, err.Error(), "default, minimal")
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"default", "minimal"}, initcmd.Templates())
}
