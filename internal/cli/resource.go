package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/forge/internal/generate"
)

var resourceCmd = &cobra.Command{
	Use:   "resource [name] [fields...]",
	Short: "Generate a model with actions, queries, and REST routes",
	Long: `Generate the schema table, server actions, query helpers, and REST
route handlers for a model.

Examples:
  forge resource post title:string body:text published:boolean`,
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
		artifacts, err := resourceArtifacts(m)
		if err != nil {
			return err
		}
		return writeArtifacts(artifacts, o)
	},
}

func init() {
	addGenerationFlags(resourceCmd)
}

// ResourceCmd returns the resource command
func ResourceCmd() *cobra.Command {
	return resourceCmd
}

func resourceArtifacts(m generate.Model) ([]generate.Artifact, error) {
	artifacts, err := actionArtifacts(m)
	if err != nil {
		return nil, err
	}
	routes, err := m.APIRoutes()
	if err != nil {
		return nil, err
	}
	return append(artifacts, routes...), nil
}
