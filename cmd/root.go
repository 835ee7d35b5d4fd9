// Package cmd defines the CLI commands for astrodon.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/binary"
)

var (
	verbose    bool
	noColor    bool
	cacheDir   string
	releaseURL string
)

// rootCmd is the base command for the astrodon CLI.
var rootCmd = &cobra.Command{
	Use:   "astrodon",
	Short: "Project manager for Astrodon",
	Long: `Astrodon packages Deno apps as desktop applications. This CLI scaffolds
projects, downloads the matching astrodon runtime and hands your app to it
for development runs and builds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command and reports a failure tagged with the
// subcommand that failed.
func Execute(ctx context.Context) error {
	c, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		module := rootCmd.Name()
		if c != nil {
			module = c.Name()
		}

		newLog(module).Error(err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "runtime cache directory (default is $APPDATA or $HOME/.astrodon)")
	rootCmd.PersistentFlags().StringVar(&releaseURL, "release-url", binary.DefaultReleaseURL, "base URL runtime releases are downloaded from")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
