package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/forge/internal/generate"
)

var actionsCmd = &cobra.Command{
	Use:   "actions [name]",
	Short: "Generate server actions and query helpers",
	Long: `Generate the server-actions and query files for an existing model.
The schema table itself is not touched; run 'forge model' first.

Examples:
  forge actions post`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := readGenOptions(cmd)
		m, err := buildModel(args[0], nil, o)
		if err != nil {
			return err
		}
		artifacts, err := actionArtifacts(m)
		if err != nil {
			return err
		}
		return writeArtifacts(artifacts, o)
	},
}

func init() {
	addGenerationFlags(actionsCmd)
}

// ActionsCmd returns the actions command
func ActionsCmd() *cobra.Command {
	return actionsCmd
}

func actionArtifacts(m generate.Model) ([]generate.Artifact, error) {
	actions, err := m.Actions()
	if err != nil {
		return nil, err
	}
	queries, err := m.Queries()
	if err != nil {
		return nil, err
	}
	return []generate.Artifact{actions, queries}, nil
}
