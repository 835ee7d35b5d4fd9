package buildcmd_test

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodon/astrodon-cli/internal/binary"
	"github.com/astrodon/astrodon-cli/internal/buildcmd"
	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/driver"
	"github.com/astrodon/astrodon-cli/internal/ui"
)

type stubConfigs struct {
	cfg       *config.AppConfig
	err       error
	gotScript string
}

func (s *stubConfigs) Resolve(_ context.Context, _ config.Options, scriptPath string) (*config.AppConfig, error) {
	s.gotScript = scriptPath
	if s.err != nil {
		return nil, s.err
	}

	cfg := *s.cfg
	cfg.Main = scriptPath

	return &cfg, nil
}

type stubBinaries struct{ calls int }

func (s *stubBinaries) Resolve(_ context.Context, _ binary.Request) (string, error) {
	s.calls++

	return "/cache/astrodon", nil
}

type recordingDriver struct{ builds []*config.AppConfig }

func (d *recordingDriver) Run(context.Context, *config.AppConfig) error { return nil }

func (d *recordingDriver) Build(_ context.Context, cfg *config.AppConfig) error {
	d.builds = append(d.builds, cfg)

	return nil
}

func newOpts(configs *stubConfigs, binaries *stubBinaries, drv *recordingDriver, wd string) *buildcmd.Opts {
	return &buildcmd.Opts{
		WorkDir:   wd,
		Runtime:   binary.Request{Version: "1.0.0"},
		Configs:   configs,
		Binaries:  binaries,
		NewDriver: func(string) driver.Driver { return drv },
		Log:       ui.NewLoggerWithOutputs("build", &bytes.Buffer{}, &bytes.Buffer{}, true),
	}
}

func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	wd := filepath.FromSlash("/projects/notes")
	configs := &stubConfigs{cfg: config.DefaultAppConfig("")}
	drv := &recordingDriver{}

	cfg, err := buildcmd.Run(context.Background(), newOpts(configs, &stubBinaries{}, drv, wd))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "mod.ts"), configs.gotScript)
	assert.Equal(t, filepath.Join(wd, "dist"), cfg.Build.Out)
	assert.Equal(t, "notes", cfg.Build.Name)
	assert.Equal(t, filepath.Join(wd, "renderer", "src"), cfg.Build.Assets)
	require.Len(t, drv.builds, 1)
}

func TestRun_Precedence(t *testing.T) {
	t.Parallel()

	file := config.DefaultAppConfig("")
	file.Build = config.BuildConfig{Out: "file-out", Name: "file-name", Icon: "icon.png"}

	drv := &recordingDriver{}
	opts := newOpts(&stubConfigs{cfg: file}, &stubBinaries{}, drv, t.TempDir())
	opts.Entry = "src/main.ts"
	opts.Out = "cli-out"

	cfg, err := buildcmd.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "src/main.ts", cfg.Main)
	assert.Equal(t, "cli-out", cfg.Build.Out, "flag beats file")
	assert.Equal(t, "file-name", cfg.Build.Name, "file beats default")
	assert.Equal(t, filepath.Join(opts.WorkDir, "renderer", "src"), cfg.Build.Assets, "default fills the gap")
	assert.Equal(t, "icon.png", cfg.Build.Icon)
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	binaries := &stubBinaries{}
	drv := &recordingDriver{}
	configs := &stubConfigs{err: fmt.Errorf("%w: nope", config.ErrConfigNotFound)}

	_, err := buildcmd.Run(context.Background(), newOpts(configs, binaries, drv, t.TempDir()))
	require.ErrorIs(t, err, config.ErrConfigNotFound)
	assert.Zero(t, binaries.calls)
	assert.Empty(t, drv.builds)
}
