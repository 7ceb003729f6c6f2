package cli

import (
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api [name] [fields...]",
	Short: "Generate a model with REST route handlers",
	Long: `Generate the schema table plus REST route handlers (collection and
member routes) under the app/api directory.

Examples:
  forge api post title:string body:text`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := readGenOptions(cmd)
		m, err := buildModel(args[0], args[1:], o)
		if err != nil {
			return err
		}
		if err := mergeSchema(m, o); err != nil {
			return err
		}
		routes, err := m.APIRoutes()
		if err != nil {
			return err
		}
		return writeArtifacts(routes, o)
	},
}

func init() {
	addGenerationFlags(apiCmd)
}

// APICmd returns the api command
func APICmd() *cobra.Command {
	return apiCmd
}
