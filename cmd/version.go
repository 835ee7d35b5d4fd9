package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion   = "dev"
	buildCommit    = "none"
	runtimeVersion = "0.1.0-alpha.2"
)

// SetVersionInfo sets the build-time version information. An empty runtime
// keeps the built-in default.
func SetVersionInfo(version, commit, runtime string) {
	buildVersion = version
	buildCommit = commit

	if runtime != "" {
		runtimeVersion = runtime
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of astrodon",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Printf("astrodon %s (commit: %s)\n", buildVersion, buildCommit)

		req, err := runtimeRequest()
		if err != nil {
			return err
		}

		fmt.Printf("runtime %s\n", req.Version)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
