package cli

import (
	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model [name] [fields...]",
	Short: "Generate a schema table definition",
	Long: `Generate a drizzle table definition and merge it into the project's
schema file.

Field syntax: name[?][:type[?]][:modifier...]
Types: string, text, integer, bigint, boolean, float, decimal, timestamp,
date, json, uuid, enum, references. Add ? for nullable, :unique for a
unique column.

Examples:
  forge model post title:string body:text published:boolean
  forge model post status:enum:draft,published,archived
  forge model comment body:text userId:references:user`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := readGenOptions(cmd)
		m, err := buildModel(args[0], args[1:], o)
		if err != nil {
			return err
		}
		return mergeSchema(m, o)
	},
}

func init() {
	addGenerationFlags(modelCmd)
}

// ModelCmd returns the model command
func ModelCmd() *cobra.Command {
	return modelCmd
}
