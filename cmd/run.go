package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/config"
	"github.com/astrodon/astrodon-cli/internal/runcmd"
)

var (
	runConfig      config.Options
	runPermissions config.PermissionFlags
	runPrompt      bool
	runAllowHrtime bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run an app in development mode",
	Long: `Run an app with the astrodon runtime.

The app config is read from --config, from astrodon.yaml next to a remote
script, or from astrodon.yaml in the current directory. When no config can be
loaded, a given script runs with the default config and no permissions.

Permission flags override the config file. Given without a value they grant
the permission without restriction; with a comma-separated list they restrict
it to those entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runConfig.ConfigPath, "config", "", "config file path or URL (default is ./astrodon.yaml)")
	f.StringVar(&runConfig.Checksum, "config-checksum", "", "expected sha256 of a remote config file")

	addAllowlistFlag(f, &runPermissions.AllowEnv, "allow-env", "allow environment access")
	addAllowlistFlag(f, &runPermissions.AllowNet, "allow-net", "allow network access")
	addAllowlistFlag(f, &runPermissions.AllowFFI, "allow-ffi", "allow loading dynamic libraries")
	addAllowlistFlag(f, &runPermissions.AllowRead, "allow-read", "allow file system read access")
	addAllowlistFlag(f, &runPermissions.AllowWrite, "allow-write", "allow file system write access")
	addAllowlistFlag(f, &runPermissions.AllowRun, "allow-run", "allow running subprocesses")

	f.BoolVar(&runPrompt, "prompt", false, "prompt for permissions that were not granted")
	f.BoolVar(&runAllowHrtime, "allow-hrtime", false, "allow high resolution time measurement")
	f.BoolVarP(&runPermissions.AllowAll, "allow-all", "A", false, "grant every permission")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := newLog("run")

	script := ""
	if len(args) > 0 {
		script = args[0]
	}

	perms := runPermissions
	if cmd.Flags().Changed("prompt") {
		perms.Prompt = &runPrompt
	}

	if cmd.Flags().Changed("allow-hrtime") {
		perms.AllowHrtime = &runAllowHrtime
	}

	runtime, err := runtimeRequest()
	if err != nil {
		return err
	}

	configs, err := configResolver(log)
	if err != nil {
		return err
	}

	_, err = runcmd.Run(cmd.Context(), &runcmd.Opts{
		Script:      script,
		Config:      runConfig,
		Permissions: perms,
		Runtime:     runtime,
		Configs:     configs,
		Binaries:    binaryResolver(log),
		NewDriver:   newDriver,
		Log:         log,
	})
	if errors.Is(err, config.ErrConfigNotFound) {
		// Already reported by the resolver; there is nothing to run.
		return nil
	}

	return err
}
