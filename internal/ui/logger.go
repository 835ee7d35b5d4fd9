// Package ui provides the tagged console logger used by every astrodon command.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Product is the name printed in every log tag.
const Product = "astrodon"

// Glyphs prefixed to each severity.
const (
	glyphSuccess = "✅"
	glyphError   = "❌"
	glyphInfo    = "\U0001f505"
)

// Logger writes user-facing lines tagged with the command that produced them,
// e.g. "✅ [astrodon run]: executing /path/to/astrodon". A nil *Logger
// discards everything.
type Logger struct {
	module string
	out    io.Writer
	errOut io.Writer

	success *color.Color
	failure *color.Color
	info    *color.Color
}

// NewLogger creates a Logger for module that writes to stdout/stderr.
// Color is disabled when noColor is true, the NO_COLOR env var is set,
// or stdout is not a terminal.
func NewLogger(module string, noColor bool) *Logger {
	noColor = noColor || os.Getenv("NO_COLOR") != "" || color.NoColor

	return NewLoggerWithOutputs(module, os.Stdout, os.Stderr, noColor)
}

// NewLoggerWithOutputs creates a Logger with custom output destinations.
// Intended for testing.
func NewLoggerWithOutputs(module string, out, errOut io.Writer, noColor bool) *Logger {
	l := &Logger{
		module:  module,
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgHiGreen),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{l.success, l.failure, l.info} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return l
}

// Success prints a success line to stdout.
func (l *Logger) Success(args ...any) {
	if l == nil {
		return
	}

	l.write(l.out, l.success, glyphSuccess, args)
}

// Error prints an error line to stderr.
func (l *Logger) Error(args ...any) {
	if l == nil {
		return
	}

	l.write(l.errOut, l.failure, glyphError, args)
}

// Info prints an informational line to stdout. Recoverable problems are
// reported at this level.
func (l *Logger) Info(args ...any) {
	if l == nil {
		return
	}

	l.write(l.out, l.info, glyphInfo, args)
}

// Successf prints a formatted success line.
func (l *Logger) Successf(format string, args ...any) {
	l.Success(fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) tag() string {
	return fmt.Sprintf("[%s %s]:", Product, l.module)
}

func (l *Logger) write(out io.Writer, c *color.Color, glyph string, args []any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}

	line := fmt.Sprintf("%s %s %s\n", c.Sprint(glyph), c.Sprint(l.tag()), strings.Join(parts, " "))
	if _, err := io.WriteString(out, line); err != nil {
		// Best-effort output; if stderr fails there's nothing useful to do.
		return
	}
}
