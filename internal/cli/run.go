// Package cli wires the forge commands. Validation happens before any file
// I/O; writes go through internal/write so force/dry-run semantics and
// status reporting stay uniform.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/forge/internal/dialect"
	"github.com/example/forge/internal/field"
	"github.com/example/forge/internal/generate"
	"github.com/example/forge/internal/project"
	"github.com/example/forge/internal/schema"
	"github.com/example/forge/internal/write"
)

// genOptions are the flags shared by every generating command.
type genOptions struct {
	Force      bool
	DryRun     bool
	UUID       bool
	Timestamps bool
}

// addGenerationFlags registers the shared generation flags on a command.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Overwrite existing files and schema blocks")
	cmd.Flags().Bool("dry-run", false, "Preview without writing files")
	cmd.Flags().Bool("uuid", false, "Use UUID primary keys instead of auto-increment")
	cmd.Flags().Bool("no-timestamps", false, "Skip created_at/updated_at columns")
}

func readGenOptions(cmd *cobra.Command) genOptions {
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	uuid, _ := cmd.Flags().GetBool("uuid")
	noTimestamps, _ := cmd.Flags().GetBool("no-timestamps")
	return genOptions{
		Force:      force,
		DryRun:     dryRun,
		UUID:       uuid,
		Timestamps: !noTimestamps,
	}
}

// buildModel validates inputs and assembles the generation model. All
// validation errors surface here, before anything touches disk.
func buildModel(name string, fieldArgs []string, o genOptions) (generate.Model, error) {
	if err := validateModelName(name); err != nil {
		return generate.Model{}, err
	}
	fields, err := field.ParseAll(fieldArgs)
	if err != nil {
		return generate.Model{}, err
	}
	if err := dialect.CheckTotality(); err != nil {
		return generate.Model{}, err
	}
	settings, err := project.Load(".")
	if err != nil {
		return generate.Model{}, err
	}
	return generate.Build(name, fields, settings, o.UUID, o.Timestamps), nil
}

// mergeSchema computes and writes the merged schema file. The merge result
// is computed entirely in memory before any write.
func mergeSchema(m generate.Model, o genOptions) error {
	tbl, err := m.SchemaTable()
	if err != nil {
		return err
	}

	path := m.SchemaPath()
	src := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		src = string(data)
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	replacing := schema.TableExists(src, tbl.Name)
	out, merged, err := schema.Merge(src, tbl, o.Force)
	if err != nil {
		return err
	}
	if !merged {
		write.Report(write.StatusSkipped, path)
		return nil
	}

	status := mergeStatus(src != "", replacing, o.DryRun)
	if o.DryRun {
		write.Report(status, path)
		return nil
	}

	// The merge engine already decided whether the table block changes;
	// the file itself is always rewritten whole.
	if _, err := write.File(path, out, write.Options{Force: true}); err != nil {
		return err
	}
	write.Report(status, path)
	return nil
}

// mergeStatus picks the status line for a schema merge that went through.
// "forced" means an existing table block was replaced; appending a new
// block to an existing file is "merged", not an overwrite.
func mergeStatus(fileExists, tableExisted, dryRun bool) write.Status {
	switch {
	case !fileExists:
		if dryRun {
			return write.StatusWouldCreate
		}
		return write.StatusCreated
	case tableExisted:
		if dryRun {
			return write.StatusWouldForce
		}
		return write.StatusForced
	default:
		if dryRun {
			return write.StatusWouldMerge
		}
		return write.StatusMerged
	}
}

// writeArtifacts writes rendered artifacts with per-file skip semantics.
func writeArtifacts(artifacts []generate.Artifact, o genOptions) error {
	opts := write.Options{Force: o.Force, DryRun: o.DryRun}
	for _, a := range artifacts {
		status, err := write.File(a.Path, a.Content, opts)
		if err != nil {
			return err
		}
		write.Report(status, a.Path)
	}
	return nil
}
