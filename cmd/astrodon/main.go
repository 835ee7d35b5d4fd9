// Package main is the entry point for the astrodon CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/astrodon/astrodon-cli/cmd"
)

// Build-time variables set via ldflags.
var (
	version        = "dev"
	commit         = "none"
	runtimeVersion = ""
)

func main() {
	cmd.SetVersionInfo(version, commit, runtimeVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
