package cli

import (
	"fmt"
	"regexp"
)

// modelNameRe matches a valid model name: a camelCase identifier.
var modelNameRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// reservedNames are model names that collide with Next.js file conventions
// or generated route segments.
var reservedNames = map[string]bool{
	"index":  true,
	"new":    true,
	"edit":   true,
	"api":    true,
	"page":   true,
	"layout": true,
	"route":  true,
}

// validateModelName checks a model name before any file I/O happens.
func validateModelName(name string) error {
	if name == "" {
		return fmt.Errorf("model name is required")
	}
	if !modelNameRe.MatchString(name) {
		return fmt.Errorf("invalid model name %q: must be a camelCase identifier (lowercase letter followed by letters/digits)", name)
	}
	if reservedNames[name] {
		return fmt.Errorf("reserved model name %q: conflicts with Next.js file conventions", name)
	}
	return nil
}
