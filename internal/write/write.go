// Package write performs the file side effects of generation, honoring
// force/dry-run semantics and reporting a categorized status per path.
package write

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Status categorizes the outcome of a single file operation.
type Status string

const (
	StatusCreated     Status = "created"
	StatusForced      Status = "forced"
	StatusMerged      Status = "merged"
	StatusSkipped     Status = "skipped"
	StatusWouldCreate Status = "would-create"
	StatusWouldForce  Status = "would-force"
	StatusWouldMerge  Status = "would-merge"
	StatusRemoved     Status = "removed"
	StatusWouldRemove Status = "would-remove"
	StatusNotFound    Status = "not-found"
)

// Options control force/dry-run behavior.
type Options struct {
	Force  bool
	DryRun bool
}

// File writes content to path, creating parent directories as needed. An
// existing file is only overwritten under Force; a skip is not an error.
func File(path, content string, o Options) (Status, error) {
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if o.DryRun {
		if exists && !o.Force {
			return StatusSkipped, nil
		}
		if exists {
			return StatusWouldForce, nil
		}
		return StatusWouldCreate, nil
	}

	if exists && !o.Force {
		return StatusSkipped, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if exists {
		return StatusForced, nil
	}
	return StatusCreated, nil
}

// Remove deletes path. A missing file reports not-found, not an error.
func Remove(path string, o Options) (Status, error) {
	if _, err := os.Stat(path); err != nil {
		return StatusNotFound, nil
	}
	if o.DryRun {
		return StatusWouldRemove, nil
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return StatusRemoved, nil
}

var statusColors = map[Status]*color.Color{
	StatusCreated:     color.New(color.FgGreen),
	StatusForced:      color.New(color.FgYellow),
	StatusMerged:      color.New(color.FgGreen),
	StatusSkipped:     color.New(color.FgHiBlack),
	StatusWouldCreate: color.New(color.FgCyan),
	StatusWouldForce:  color.New(color.FgCyan),
	StatusWouldMerge:  color.New(color.FgCyan),
	StatusRemoved:     color.New(color.FgRed),
	StatusWouldRemove: color.New(color.FgCyan),
	StatusNotFound:    color.New(color.FgHiBlack),
}

// Report prints the status line for one path.
func Report(s Status, path string) {
	c, ok := statusColors[s]
	if !ok {
		c = color.New(color.FgWhite)
	}
	fmt.Printf("  %s %s\n", c.Sprintf("[%s]", s), path)
}
