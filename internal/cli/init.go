package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/forge/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Detect the project layout and save forge.config.json",
	Long: `Probe the host project (src/ directory, tsconfig path alias,
drizzle.config.ts dialect, lockfile) and persist the detected settings to
forge.config.json so later runs skip detection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := project.Detect(".")
		if err != nil {
			return err
		}
		if err := project.Save(".", settings); err != nil {
			return err
		}
		project.Reset()

		fmt.Printf("Wrote %s\n", project.ConfigFile)
		printSettings(settings)
		return nil
	},
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return initCmd
}
