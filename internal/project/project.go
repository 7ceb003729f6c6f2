// Package project detects the host web project's layout and persists forge
// settings alongside it.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/example/forge/internal/dialect"
)

// ConfigFile is the name of the persisted settings file at the project root.
const ConfigFile = "forge.config.json"

// Settings describes everything the generators need to know about the host
// project.
type Settings struct {
	HasSrcDir      bool            `json:"hasSrcDir"`
	Alias          string          `json:"alias"`
	Dialect        dialect.Dialect `json:"dialect"`
	PackageManager string          `json:"packageManager"`
}

// DBDir returns the directory holding the generated schema file.
func (s Settings) DBDir() string {
	if s.HasSrcDir {
		return filepath.Join("src", "lib", "db")
	}
	return filepath.Join("lib", "db")
}

// LibDir returns the directory holding actions and queries.
func (s Settings) LibDir() string {
	if s.HasSrcDir {
		return filepath.Join("src", "lib")
	}
	return "lib"
}

// AppDir returns the Next.js app directory.
func (s Settings) AppDir() string {
	if s.HasSrcDir {
		return filepath.Join("src", "app")
	}
	return "app"
}

// SchemaPath returns the path of the generated schema file.
func (s Settings) SchemaPath() string {
	return filepath.Join(s.DBDir(), "schema.ts")
}

// dialectRe extracts the dialect marker from drizzle.config.ts. A regex is
// enough here; the config is generator-authored and the marker is a plain
// string literal.
var dialectRe = regexp.MustCompile(`dialect:\s*["']([a-zA-Z0-9-]+)["']`)

// aliasRe extracts the first path-alias prefix from tsconfig.json paths,
// e.g. "@/*" -> "@".
var aliasRe = regexp.MustCompile(`"([^"]+)/\*"\s*:`)

// Detect probes the host project under root and derives settings from its
// layout: src/ presence, tsconfig path alias, drizzle.config.ts dialect
// marker, and the lockfile flavor.
func Detect(root string) (Settings, error) {
	s := Settings{
		Alias:          "@",
		Dialect:        dialect.SQLite,
		PackageManager: "npm",
	}

	if info, err := os.Stat(filepath.Join(root, "src")); err == nil && info.IsDir() {
		s.HasSrcDir = true
	}

	if alias, ok := detectAlias(filepath.Join(root, "tsconfig.json")); ok {
		s.Alias = alias
	}

	if d, ok := detectDialect(filepath.Join(root, "drizzle.config.ts")); ok {
		s.Dialect = d
	}

	s.PackageManager = detectPackageManager(root)
	return s, nil
}

// detectAlias reads the import alias prefix from tsconfig.json
// compilerOptions.paths.
func detectAlias(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var cfg struct {
		CompilerOptions struct {
			Paths map[string]json.RawMessage `json:"paths"`
		} `json:"compilerOptions"`
	}
	// tsconfig files often carry comments; fall back to a regex scan when
	// strict JSON decoding fails.
	if err := json.Unmarshal(data, &cfg); err == nil && len(cfg.CompilerOptions.Paths) > 0 {
		for key := range cfg.CompilerOptions.Paths {
			if prefix, ok := strings.CutSuffix(key, "/*"); ok {
				return prefix, true
			}
		}
	}
	if m := aliasRe.FindStringSubmatch(string(data)); m != nil {
		return m[1], true
	}
	return "", false
}

// detectDialect reads the dialect marker from drizzle.config.ts.
func detectDialect(path string) (dialect.Dialect, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	m := dialectRe.FindStringSubmatch(string(data))
	if m == nil {
		return "", false
	}
	d, err := dialect.Parse(m[1])
	if err != nil {
		return "", false
	}
	return d, true
}

// detectPackageManager picks the package manager from lockfile presence.
func detectPackageManager(root string) string {
	lockfiles := []struct {
		file string
		pm   string
	}{
		{"pnpm-lock.yaml", "pnpm"},
		{"yarn.lock", "yarn"},
		{"bun.lockb", "bun"},
		{"package-lock.json", "npm"},
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.file)); err == nil {
			return lf.pm
		}
	}
	return "npm"
}

// Save writes settings to forge.config.json at the project root.
func Save(root string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(root, ConfigFile)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Read loads persisted settings from forge.config.json.
func Read(root string) (Settings, error) {
	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}

var (
	cacheMu sync.Mutex
	cached  map[string]Settings
)

// Load returns settings for root, preferring the persisted config file and
// falling back to detection. The result is memoized for the process
// lifetime; Reset clears the cache.
func Load(root string) (Settings, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cached[root]; ok {
		return s, nil
	}

	s, err := Read(root)
	if errors.Is(err, os.ErrNotExist) {
		// No persisted config; detection is the fallback. Any other read
		// failure (unreadable or malformed file) surfaces as an error.
		s, err = Detect(root)
	}
	if err != nil {
		return Settings{}, err
	}

	if cached == nil {
		cached = map[string]Settings{}
	}
	cached[root] = s
	return s, nil
}

// Reset clears the memoized settings. Intended for tests.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cached = nil
}
