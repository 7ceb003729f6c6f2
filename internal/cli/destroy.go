package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/forge/internal/schema"
	"github.com/example/forge/internal/write"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy [scaffold|resource|api] [name]",
	Short: "Remove generated files for a model",
	Long: `Remove the files a previous generation created, plus the model's
table block from the schema file. Imports left behind in the schema file
are not pruned.

Examples:
  forge destroy scaffold post
  forge destroy api post --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, name := args[0], args[1]
		switch kind {
		case "scaffold", "resource", "api":
		default:
			return fmt.Errorf("unknown destroy target %q (valid: scaffold, resource, api)", kind)
		}

		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		o := genOptions{Force: force, DryRun: dryRun, Timestamps: true}
		m, err := buildModel(name, nil, o)
		if err != nil {
			return err
		}

		opts := write.Options{Force: o.Force, DryRun: o.DryRun}
		for _, path := range m.ArtifactPaths(kind) {
			status, err := write.Remove(path, opts)
			if err != nil {
				return err
			}
			write.Report(status, path)
		}

		return removeSchemaTable(m.SchemaPath(), m.Names.Table, o)
	},
}

func init() {
	// destroy removes artifacts; the key-shape and timestamp flags only
	// make sense when generating.
	destroyCmd.Flags().Bool("force", false, "Force removal of generated files")
	destroyCmd.Flags().Bool("dry-run", false, "Preview removals without deleting files")
}

// DestroyCmd returns the destroy command
func DestroyCmd() *cobra.Command {
	return destroyCmd
}

// removeSchemaTable excises the model's table block from the schema file.
func removeSchemaTable(path, tableName string, o genOptions) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		write.Report(write.StatusNotFound, path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	out, removed, err := schema.Remove(string(data), tableName)
	if err != nil {
		return err
	}
	if !removed {
		write.Report(write.StatusNotFound, path)
		return nil
	}
	if o.DryRun {
		write.Report(write.StatusWouldRemove, path)
		return nil
	}
	if _, err := write.File(path, out, write.Options{Force: true}); err != nil {
		return err
	}
	write.Report(write.StatusRemoved, path)
	return nil
}
