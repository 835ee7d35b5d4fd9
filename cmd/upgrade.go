package cmd

import (
	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/upgradecmd"
)

var (
	upgradeToolchain string
	upgradeVersion   string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the astrodon runtime",
	Long: `Download an astrodon runtime into the cache and use it for later runs
and builds. Without --version the runtime this CLI was released with is used.`,
	Args: cobra.NoArgs,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().StringVarP(&upgradeToolchain, "toolchain", "t", "stable", "toolchain to upgrade to")
	upgradeCmd.Flags().StringVar(&upgradeVersion, "version", "", "runtime version to install")
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, _ []string) error {
	log := newLog("upgrade")

	root, err := cacheRoot()
	if err != nil {
		return err
	}

	version := upgradeVersion
	if version == "" {
		version = runtimeVersion
	}

	_, err = upgradecmd.Run(cmd.Context(), &upgradecmd.Opts{
		Toolchain: upgradeToolchain,
		Version:   version,
		CacheRoot: root,
		Binaries:  binaryResolver(log),
		Log:       log,
	})

	return err
}
