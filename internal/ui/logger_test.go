package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astrodon/astrodon-cli/internal/ui"
)

func TestLogger_Success_NoColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := ui.NewLoggerWithOutputs("run", &buf, &bytes.Buffer{}, true)

	l.Success("binary found")

	assert.Equal(t, "✅ [astrodon run]: binary found\n", buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestLogger_Success_WithColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := ui.NewLoggerWithOutputs("run", &buf, &bytes.Buffer{}, false)

	l.Success("done")

	assert.Contains(t, buf.String(), "\033[92m") // bright green
	assert.Contains(t, buf.String(), "done")
}

func TestLogger_Error(t *testing.T) {
	t.Parallel()

	var out, errBuf bytes.Buffer
	l := ui.NewLoggerWithOutputs("build", &out, &errBuf, true)

	l.Error("something broke")

	assert.Empty(t, out.String())
	assert.Contains(t, errBuf.String(), "❌")
	assert.Contains(t, errBuf.String(), "[astrodon build]:")
	assert.Contains(t, errBuf.String(), "something broke")
}

func TestLogger_Error_WithColor(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer
	l := ui.NewLoggerWithOutputs("build", &bytes.Buffer{}, &errBuf, false)

	l.Error("broken")

	assert.Contains(t, errBuf.String(), "\033[31m") // red
}

func TestLogger_Info(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := ui.NewLoggerWithOutputs("init", &buf, &bytes.Buffer{}, true)

	l.Info("status", "update")

	assert.Equal(t, "\U0001f505 [astrodon init]: status update\n", buf.String())
}

func TestLogger_Nil(t *testing.T) {
	t.Parallel()

	var l *ui.Logger

	assert.NotPanics(t, func() {
		l.Success("ignored")
		l.Successf("ignored %s", "bin")
		l.Error("ignored")
		l.Errorf("ignored %d", 1)
		l.Info("ignored")
		l.Infof("ignored %s", "x")
	})
}
