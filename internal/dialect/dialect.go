// Package dialect maps abstract field kinds onto drizzle-orm column
// builder syntax for each supported database dialect.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect identifies a database dialect family.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// All lists every supported dialect.
var All = []Dialect{SQLite, Postgres, MySQL}

// drizzle-orm core module per dialect.
var modules = map[Dialect]string{
	SQLite:   "drizzle-orm/sqlite-core",
	Postgres: "drizzle-orm/pg-core",
	MySQL:    "drizzle-orm/mysql-core",
}

// tableFuncs maps each dialect to its table-definition function.
var tableFuncs = map[Dialect]string{
	SQLite:   "sqliteTable",
	Postgres: "pgTable",
	MySQL:    "mysqlTable",
}

// aliases accepted by Parse; drizzle driver names map onto their family.
var aliases = map[string]Dialect{
	"sqlite":         SQLite,
	"better-sqlite3": SQLite,
	"turso":          SQLite,
	"libsql":         SQLite,
	"postgres":       Postgres,
	"postgresql":     Postgres,
	"pg":             Postgres,
	"supabase":       Postgres,
	"neon":           Postgres,
	"mysql":          MySQL,
	"mysql2":         MySQL,
	"planetscale":    MySQL,
}

// Parse resolves a dialect marker string (as found in drizzle.config.ts or
// forge.config.json) to its dialect family.
func Parse(s string) (Dialect, error) {
	d, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown dialect %q (valid: sqlite, postgres, mysql)", s)
	}
	return d, nil
}

// Module returns the drizzle-orm core module path for a dialect.
func Module(d Dialect) string { return modules[d] }

// TableFunc returns the table-definition symbol and its module path.
func TableFunc(d Dialect) (symbol, module string) {
	return tableFuncs[d], modules[d]
}

// TableFuncs returns the table-definition symbols of every dialect. The
// merge engine uses this to recognize tables declared under any dialect.
func TableFuncs() []string {
	out := make([]string, 0, len(All))
	for _, d := range All {
		out = append(out, tableFuncs[d])
	}
	return out
}
