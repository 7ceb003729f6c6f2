package cli

import (
	"github.com/spf13/cobra"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [name] [fields...]",
	Short: "Generate a full resource with UI pages",
	Long: `Generate everything 'forge resource' does plus the UI pages: a list
page, a detail page, and a new-record form.

Examples:
  forge scaffold post title:string body:text published:boolean
  forge scaffold product name:string price:decimal status:enum:draft,active --uuid`,
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
		pages, err := m.Pages()
		if err != nil {
			return err
		}
		return writeArtifacts(append(artifacts, pages...), o)
	},
}

func init() {
	addGenerationFlags(scaffoldCmd)
}

// ScaffoldCmd returns the scaffold command
func ScaffoldCmd() *cobra.Command {
	return scaffoldCmd
}
