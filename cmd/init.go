package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrodon/astrodon-cli/internal/initcmd"
)

var (
	initTemplate string
	initName     string
	initDir      string
	initAuthor   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project",
	Long: `Initialize a new astrodon project from a built-in template.

The project is created in --dir, or in a directory named after the project.
Available templates: ` + strings.Join(initcmd.Templates(), ", ") + `.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", initcmd.DefaultTemplate, "template to use")
	initCmd.Flags().StringVarP(&initName, "name", "n", initcmd.DefaultName, "name of the project")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", "", "target directory (default is ./<name>)")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "author written to the config")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	log := newLog("init")

	dir, err := initcmd.Run(&initcmd.Opts{
		Template: initTemplate,
		Name:     initName,
		Author:   initAuthor,
		Dir:      initDir,
	})
	if err != nil {
		return err
	}

	log.Successf("created %s in %s", initName, dir)

	return nil
}
