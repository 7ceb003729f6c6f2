// Package schema renders drizzle table blocks and idempotently merges them
// into the host project's generated schema file.
//
// The file format is narrow and generator-authored: one import block (one
// statement per module path, symbols comma-separated) followed by one
// exported table-definition block per model. String-level extraction is
// deliberate; there is no TypeScript parser here.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/example/forge/internal/dialect"
)

// Column is one rendered table column: the JS property key and its
// dialect-specific builder expression.
type Column struct {
	Key  string // property name, camelCase (e.g. "createdAt")
	Spec dialect.ColumnSpec
}

// Table is a fully mapped table definition ready to render.
type Table struct {
	Name    string // table name, plural snake_case (e.g. "blog_posts")
	Const   string // exported const name, plural camelCase (e.g. "blogPosts")
	Dialect dialect.Dialect
	Columns []Column
}

// ErrCorruptSchema marks an existing schema file this package cannot parse
// (malformed import line, unterminated table block). Surfaced to the user
// rather than risking silent truncation.
var ErrCorruptSchema = errors.New("corrupted schema file")

var importRe = regexp.MustCompile(`^import \{ ?([^}]*?) ?\} from "([^"]+)";?$`)

// tableDeclRe matches the start of a table block under any dialect's
// table-function syntax, so a project that switched dialects still gets a
// hit on its old tables.
var tableDeclRe = regexp.MustCompile(`(?m)^export const \w+ = (?:sqliteTable|pgTable|mysqlTable)\("([^"]+)", \{`)

// importGroup is one import statement: a module path and its symbols in
// first-seen order.
type importGroup struct {
	module  string
	symbols []string
}

// Render produces a complete table block.
func Render(t Table) string {
	symbol, _ := dialect.TableFunc(t.Dialect)
	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = %s(%q, {\n", t.Const, symbol, t.Name)
	for _, c := range t.Columns {
		fmt.Fprintf(&b, "  %s: %s,\n", c.Key, c.Spec.Expr)
	}
	b.WriteString("});\n")
	return b.String()
}

// imports returns the import groups a table requires: the table function
// plus every column's symbols, grouped by module path.
func imports(t Table) []importGroup {
	symbol, module := dialect.TableFunc(t.Dialect)
	groups := []importGroup{{module: module, symbols: []string{symbol}}}
	for _, c := range t.Columns {
		groups = addSymbols(groups, c.Spec.Module, c.Spec.Symbols)
	}
	return groups
}

// TableExists reports whether the source declares a table with the given
// name under any dialect's table-function syntax.
func TableExists(src, tableName string) bool {
	_, _, found := findTable(src, tableName)
	return found
}

// Merge integrates a table into existing schema source and returns the full
// new file content. merged is false when the table already exists and force
// is not set (the source is returned unchanged).
func Merge(src string, t Table, force bool) (out string, merged bool, err error) {
	if strings.TrimSpace(src) == "" {
		return renderImports(imports(t)) + "\n" + Render(t), true, nil
	}

	if _, end, found := findTable(src, t.Name); found {
		if end < 0 {
			return "", false, fmt.Errorf("%w: unterminated table block for %q", ErrCorruptSchema, t.Name)
		}
		if !force {
			return src, false, nil
		}
	}

	groups, body, err := splitImports(src)
	if err != nil {
		return "", false, err
	}

	// Under force, excise the old block; its imports stay (import sets
	// only grow, pruning is out of scope).
	if start, end, found := findTable(body, t.Name); found {
		body = body[:start] + body[end:]
	}

	for _, g := range imports(t) {
		groups = addSymbols(groups, g.module, g.symbols)
	}

	body = strings.TrimSpace(body)
	out = renderImports(groups) + "\n"
	if body != "" {
		out += body + "\n\n"
	}
	out += Render(t)
	return out, true, nil
}

// Remove excises a table block from the source. Imports are not pruned
// (import sets only grow; same limitation as force merges). removed is
// false when the table is not declared.
func Remove(src, tableName string) (out string, removed bool, err error) {
	start, end, found := findTable(src, tableName)
	if !found {
		return src, false, nil
	}
	if end < 0 {
		return "", false, fmt.Errorf("%w: unterminated table block for %q", ErrCorruptSchema, tableName)
	}
	out = src[:start] + src[end:]
	out = strings.TrimRight(out, "\n")
	if out != "" {
		out += "\n"
	}
	return out, true, nil
}

// findTable locates the block for tableName. Returns the byte offsets of
// the declaration start and of the first byte past the closing "});". end
// is -1 when the block never closes.
func findTable(src, tableName string) (start, end int, found bool) {
	for _, m := range tableDeclRe.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		if name != tableName {
			continue
		}
		start = m[0]
		closing := strings.Index(src[start:], "});")
		if closing < 0 {
			return start, -1, true
		}
		end = start + closing + len("});")
		// Swallow the trailing newline so removal leaves no blank hole.
		if end < len(src) && src[end] == '\n' {
			end++
		}
		return start, end, true
	}
	return 0, 0, false
}

// splitImports separates import statements from the rest of the file. A
// line that starts with "import" but does not match the generated format is
// a corruption error.
func splitImports(src string) ([]importGroup, string, error) {
	var groups []importGroup
	var bodyLines []string
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import") {
			m := importRe.FindStringSubmatch(trimmed)
			if m == nil {
				return nil, "", fmt.Errorf("%w: unrecognized import line %q", ErrCorruptSchema, trimmed)
			}
			groups = addSymbols(groups, m[2], splitSymbols(m[1]))
			continue
		}
		bodyLines = append(bodyLines, line)
	}
	return groups, strings.Join(bodyLines, "\n"), nil
}

// addSymbols unions symbols into the group for module, preserving
// first-seen order of both module paths and symbols.
func addSymbols(groups []importGroup, module string, symbols []string) []importGroup {
	for i := range groups {
		if groups[i].module != module {
			continue
		}
		for _, s := range symbols {
			if !contains(groups[i].symbols, s) {
				groups[i].symbols = append(groups[i].symbols, s)
			}
		}
		return groups
	}
	g := importGroup{module: module}
	for _, s := range symbols {
		if !contains(g.symbols, s) {
			g.symbols = append(g.symbols, s)
		}
	}
	return append(groups, g)
}

func renderImports(groups []importGroup) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "import { %s } from %q;\n", strings.Join(g.symbols, ", "), g.module)
	}
	return b.String()
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
