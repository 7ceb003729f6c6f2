package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/forge/internal/dialect"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDetectDefaults(t *testing.T) {
	root := t.TempDir()

	s, err := Detect(root)
	require.NoError(t, err)
	assert.False(t, s.HasSrcDir)
	assert.Equal(t, "@", s.Alias)
	assert.Equal(t, dialect.SQLite, s.Dialect)
	assert.Equal(t, "npm", s.PackageManager)
	assert.Equal(t, filepath.Join("lib", "db"), s.DBDir())
	assert.Equal(t, "app", s.AppDir())
}

func TestDetectFullProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	writeFile(t, root, "tsconfig.json", `{
  "compilerOptions": {
    "paths": {
      "~/*": ["./src/*"]
    }
  }
}`)
	writeFile(t, root, "drizzle.config.ts", `import { defineConfig } from "drizzle-kit";

export default defineConfig({
  schema: "./src/lib/db/schema.ts",
  dialect: "postgresql",
});
`)
	writeFile(t, root, "pnpm-lock.yaml", "lockfileVersion: 9.0\n")

	s, err := Detect(root)
	require.NoError(t, err)
	assert.True(t, s.HasSrcDir)
	assert.Equal(t, "~", s.Alias)
	assert.Equal(t, dialect.Postgres, s.Dialect)
	assert.Equal(t, "pnpm", s.PackageManager)
	assert.Equal(t, filepath.Join("src", "lib", "db", "schema.ts"), s.SchemaPath())
}

func TestDetectTsconfigWithComments(t *testing.T) {
	root := t.TempDir()
	// Comments make this invalid JSON; the regex fallback still finds
	// the alias.
	writeFile(t, root, "tsconfig.json", `{
  // path aliases
  "compilerOptions": {
    "paths": {
      "@/*": ["./*"]
    }
  }
}`)

	s, err := Detect(root)
	require.NoError(t, err)
	assert.Equal(t, "@", s.Alias)
}

func TestSaveReadRoundTrip(t *testing.T) {
	root := t.TempDir()
	want := Settings{
		HasSrcDir:      true,
		Alias:          "~",
		Dialect:        dialect.MySQL,
		PackageManager: "yarn",
	}
	require.NoError(t, Save(root, want))

	got, err := Read(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFallsBackToDetectOnlyWhenConfigMissing(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	root := t.TempDir()
	s, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "npm", s.PackageManager)

	Reset()
	// A config file that exists but cannot be parsed is an error, not a
	// silent re-detect.
	writeFile(t, root, ConfigFile, `{"alias": "~",`)
	_, err = Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadMemoizesAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	root := t.TempDir()
	require.NoError(t, Save(root, Settings{Alias: "@", Dialect: dialect.SQLite, PackageManager: "npm"}))

	first, err := Load(root)
	require.NoError(t, err)

	// Changing the file on disk is invisible until Reset.
	require.NoError(t, Save(root, Settings{Alias: "~", Dialect: dialect.Postgres, PackageManager: "pnpm"}))
	second, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	Reset()
	third, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "~", third.Alias)
	assert.Equal(t, dialect.Postgres, third.Dialect)
}
