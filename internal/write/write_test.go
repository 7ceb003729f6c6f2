package write

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStatuses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.ts")

	status, err := File(path, "one", Options{})
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if status != StatusCreated {
		t.Errorf("status = %q, want %q", status, StatusCreated)
	}

	// Existing file without force is skipped, content untouched.
	status, err = File(path, "two", Options{})
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if status != StatusSkipped {
		t.Errorf("status = %q, want %q", status, StatusSkipped)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "one" {
		t.Errorf("content = %q, want %q", data, "one")
	}

	status, err = File(path, "two", Options{Force: true})
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if status != StatusForced {
		t.Errorf("status = %q, want %q", status, StatusForced)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", data, "two")
	}
}

func TestFileDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ts")

	status, err := File(path, "x", Options{DryRun: true})
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if status != StatusWouldCreate {
		t.Errorf("status = %q, want %q", status, StatusWouldCreate)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry-run must not write the file")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	status, _ = File(path, "y", Options{DryRun: true, Force: true})
	if status != StatusWouldForce {
		t.Errorf("status = %q, want %q", status, StatusWouldForce)
	}
	status, _ = File(path, "y", Options{DryRun: true})
	if status != StatusSkipped {
		t.Errorf("status = %q, want %q", status, StatusSkipped)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ts")

	status, err := Remove(path, Options{})
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if status != StatusNotFound {
		t.Errorf("status = %q, want %q", status, StatusNotFound)
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	status, _ = Remove(path, Options{DryRun: true})
	if status != StatusWouldRemove {
		t.Errorf("status = %q, want %q", status, StatusWouldRemove)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("dry-run must not remove the file")
	}

	status, _ = Remove(path, Options{})
	if status != StatusRemoved {
		t.Errorf("status = %q, want %q", status, StatusRemoved)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}
}
