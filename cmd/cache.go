package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/binary"
)

var cacheCleanAll bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage downloaded runtimes",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached runtime versions",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean [version]",
	Short: "Remove cached runtimes",
	Long: `Remove a cached runtime version to free disk space. With --all, every
cached version is removed. Runtimes are downloaded again when needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCacheClean,
}

func init() {
	cacheCleanCmd.Flags().BoolVar(&cacheCleanAll, "all", false, "remove every cached version")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(_ *cobra.Command, _ []string) error {
	log := newLog("cache")

	root, err := cacheRoot()
	if err != nil {
		return err
	}

	versions, err := binary.Versions(root)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		log.Infof("no runtimes cached in %s", root)

		return nil
	}

	for _, v := range versions {
		fmt.Printf("%-20s %10s  %s\n", v.Version, formatBytes(v.Size), v.Path)
	}

	return nil
}

func runCacheClean(_ *cobra.Command, args []string) error {
	log := newLog("cache")

	version := ""
	if len(args) > 0 {
		version = args[0]
	}

	if version == "" && !cacheCleanAll {
		return fmt.Errorf("specify a version or --all")
	}

	if version != "" && cacheCleanAll {
		return fmt.Errorf("a version and --all are mutually exclusive")
	}

	root, err := cacheRoot()
	if err != nil {
		return err
	}

	freed, err := binary.Clean(root, version)
	if err != nil {
		return fmt.Errorf("cleaning runtime cache: %w", err)
	}

	if freed > 0 {
		log.Successf("cleaned runtime cache (%s)", formatBytes(freed))
	} else {
		log.Info("runtime cache already clean")
	}

	return nil
}

func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
