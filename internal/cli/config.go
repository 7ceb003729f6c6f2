package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/forge/internal/project"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the project settings forge will generate against",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := project.Load(".")
		if err != nil {
			return err
		}
		printSettings(settings)
		return nil
	},
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}

func printSettings(s project.Settings) {
	label := color.New(color.FgCyan)
	fmt.Printf("%s %v\n", label.Sprint("src directory:"), s.HasSrcDir)
	fmt.Printf("%s %s\n", label.Sprint("import alias:"), s.Alias)
	fmt.Printf("%s %s\n", label.Sprint("dialect:"), s.Dialect)
	fmt.Printf("%s %s\n", label.Sprint("package manager:"), s.PackageManager)
	fmt.Printf("%s %s\n", label.Sprint("schema file:"), s.SchemaPath())
	fmt.Printf("%s %s\n", label.Sprint("app directory:"), s.AppDir())
}
