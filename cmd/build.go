package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/buildcmd"
	"github.com/astrodon/astrodon-cli/internal/config"
)

var (
	buildEntry  string
	buildOut    string
	buildName   string
	buildAssets string
	buildConfig config.Options
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the app",
	Long: `Build the app into a distributable package with the astrodon runtime.

Output directory, name and assets path are taken from the flags, then from the
build section of the config file, then default to ./dist, the name of the
current directory and ./renderer/src.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildEntry, "entry", "i", "", "entry point for the app (default is ./mod.ts)")
	buildCmd.Flags().StringVarP(&buildOut, "out", "d", "", "output directory")
	buildCmd.Flags().StringVarP(&buildName, "name", "n", "", "custom name for the build")
	buildCmd.Flags().StringVarP(&buildAssets, "assets", "a", "", "custom assets path")
	buildCmd.Flags().StringVar(&buildConfig.ConfigPath, "config", "", "config file path or URL (default is ./astrodon.yaml)")
	buildCmd.Flags().StringVar(&buildConfig.Checksum, "config-checksum", "", "expected sha256 of a remote config file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	log := newLog("build")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	runtime, err := runtimeRequest()
	if err != nil {
		return err
	}

	configs, err := configResolver(log)
	if err != nil {
		return err
	}

	_, err = buildcmd.Run(cmd.Context(), &buildcmd.Opts{
		Entry:     buildEntry,
		Out:       buildOut,
		Name:      buildName,
		Assets:    buildAssets,
		Config:    buildConfig,
		WorkDir:   wd,
		Runtime:   runtime,
		Configs:   configs,
		Binaries:  binaryResolver(log),
		NewDriver: newDriver,
		Log:       log,
	})
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil
	}

	return err
}
