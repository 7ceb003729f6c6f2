package dialect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/forge/internal/field"
	"github.com/example/forge/internal/naming"
)

// ColumnSpec is the dialect-specific rendering of one column: the builder
// expression, the module the builder symbols come from, and the symbols
// that must be imported.
type ColumnSpec struct {
	Expr    string
	Module  string
	Symbols []string
}

// ErrUnmappedType marks a (kind, dialect) pair with no mapping. This is an
// internal defect, not a user input error; generation must abort.
var ErrUnmappedType = errors.New("unmapped type/dialect pair")

// builder renders the bare column expression for one (kind, dialect) pair.
// Modifiers (.notNull(), .unique()) are appended by MapType.
type builder func(col string, f field.Field) ColumnSpec

// simple returns a builder for columns of the shape symbol("col"<args>).
func simple(d Dialect, symbol, args string) builder {
	return func(col string, _ field.Field) ColumnSpec {
		return ColumnSpec{
			Expr:    fmt.Sprintf("%s(%q%s)", symbol, col, args),
			Module:  modules[d],
			Symbols: []string{symbol},
		}
	}
}

// columnTable holds the full (kind, dialect) mapping. It is keyed by kind
// first so CheckTotality can walk it mechanically.
var columnTable = map[field.Kind]map[Dialect]builder{
	field.KindString: {
		SQLite:   simple(SQLite, "text", ""),
		Postgres: simple(Postgres, "varchar", ", { length: 256 }"),
		MySQL:    simple(MySQL, "varchar", ", { length: 256 }"),
	},
	field.KindText: {
		SQLite:   simple(SQLite, "text", ""),
		Postgres: simple(Postgres, "text", ""),
		MySQL:    simple(MySQL, "text", ""),
	},
	field.KindInteger: {
		SQLite:   simple(SQLite, "integer", ""),
		Postgres: simple(Postgres, "integer", ""),
		MySQL:    simple(MySQL, "int", ""),
	},
	field.KindBigint: {
		SQLite:   simple(SQLite, "blob", `, { mode: "bigint" }`),
		Postgres: simple(Postgres, "bigint", `, { mode: "number" }`),
		MySQL:    simple(MySQL, "bigint", `, { mode: "number" }`),
	},
	field.KindBoolean: {
		// sqlite has no boolean type; drizzle stores it as an integer
		// with a mode flag.
		SQLite:   simple(SQLite, "integer", `, { mode: "boolean" }`),
		Postgres: simple(Postgres, "boolean", ""),
		MySQL:    simple(MySQL, "boolean", ""),
	},
	field.KindFloat: {
		SQLite:   simple(SQLite, "real", ""),
		Postgres: simple(Postgres, "real", ""),
		MySQL:    simple(MySQL, "float", ""),
	},
	field.KindDecimal: {
		// sqlite has no precise numeric type; stored as text.
		SQLite:   simple(SQLite, "text", ""),
		Postgres: simple(Postgres, "numeric", ", { precision: 10, scale: 2 }"),
		MySQL:    simple(MySQL, "decimal", ", { precision: 10, scale: 2 }"),
	},
	field.KindTimestamp: {
		SQLite:   simple(SQLite, "integer", `, { mode: "timestamp" }`),
		Postgres: simple(Postgres, "timestamp", ""),
		MySQL:    simple(MySQL, "timestamp", ""),
	},
	field.KindDate: {
		SQLite:   simple(SQLite, "integer", `, { mode: "timestamp" }`),
		Postgres: simple(Postgres, "date", ""),
		MySQL:    simple(MySQL, "date", ""),
	},
	field.KindJSON: {
		SQLite:   simple(SQLite, "blob", `, { mode: "json" }`),
		Postgres: simple(Postgres, "json", ""),
		MySQL:    simple(MySQL, "json", ""),
	},
	field.KindUUID: {
		SQLite:   simple(SQLite, "text", ""),
		Postgres: simple(Postgres, "uuid", ""),
		MySQL:    simple(MySQL, "varchar", ", { length: 36 }"),
	},
	field.KindEnum: {
		SQLite:   enumBuilder(SQLite, "text"),
		Postgres: enumBuilder(Postgres, "text"),
		MySQL:    nativeEnumBuilder(MySQL, "mysqlEnum"),
	},
	field.KindReference: {
		SQLite:   referenceBuilder(SQLite, "integer"),
		Postgres: referenceBuilder(Postgres, "integer"),
		MySQL:    referenceBuilder(MySQL, "int"),
	},
}

// enumBuilder renders a constrained text column for dialects without a
// native enum type: text("status", { enum: ["draft", "published"] }).
func enumBuilder(d Dialect, symbol string) builder {
	return func(col string, f field.Field) ColumnSpec {
		return ColumnSpec{
			Expr:    fmt.Sprintf("%s(%q, { enum: %s })", symbol, col, jsStringArray(f.EnumValues)),
			Module:  modules[d],
			Symbols: []string{symbol},
		}
	}
}

// nativeEnumBuilder renders a first-class enum column:
// mysqlEnum("status", ["draft", "published"]).
func nativeEnumBuilder(d Dialect, symbol string) builder {
	return func(col string, f field.Field) ColumnSpec {
		return ColumnSpec{
			Expr:    fmt.Sprintf("%s(%q, %s)", symbol, col, jsStringArray(f.EnumValues)),
			Module:  modules[d],
			Symbols: []string{symbol},
		}
	}
}

// referenceBuilder renders an integer foreign-key column pointing at the
// target table's id column. The referenced model's own id type is not
// introspected; references are always integer.
func referenceBuilder(d Dialect, symbol string) builder {
	return func(col string, f field.Field) ColumnSpec {
		target := naming.For(f.ReferenceTarget).PluralCamel
		return ColumnSpec{
			Expr:    fmt.Sprintf("%s(%q).references(() => %s.id)", symbol, col, target),
			Module:  modules[d],
			Symbols: []string{symbol},
		}
	}
}

// MapType resolves a parsed field to its column spec under a dialect.
// Every (kind, dialect) pair must resolve; a miss is a programming defect
// surfaced as ErrUnmappedType.
func MapType(f field.Field, d Dialect) (ColumnSpec, error) {
	byDialect, ok := columnTable[f.Kind]
	if !ok {
		return ColumnSpec{}, fmt.Errorf("%w: kind %q", ErrUnmappedType, f.Kind)
	}
	build, ok := byDialect[d]
	if !ok {
		return ColumnSpec{}, fmt.Errorf("%w: kind %q under dialect %q", ErrUnmappedType, f.Kind, d)
	}

	col := naming.ColumnName(f.Name)
	if f.Kind == field.KindReference {
		col = naming.ForeignKey(f.ReferenceTarget)
	}

	spec := build(col, f)
	if !f.Nullable {
		spec.Expr += ".notNull()"
	}
	if f.Unique {
		spec.Expr += ".unique()"
	}
	return spec, nil
}

// IDColumn returns the primary-key column for a dialect: auto-increment
// integer by default, generated UUID when uuid is set.
func IDColumn(d Dialect, uuid bool) ColumnSpec {
	if uuid {
		switch d {
		case SQLite:
			return ColumnSpec{
				Expr:    `text("id").primaryKey().$defaultFn(() => crypto.randomUUID())`,
				Module:  modules[d],
				Symbols: []string{"text"},
			}
		case Postgres:
			return ColumnSpec{
				Expr:    `uuid("id").defaultRandom().primaryKey()`,
				Module:  modules[d],
				Symbols: []string{"uuid"},
			}
		case MySQL:
			return ColumnSpec{
				Expr:    `varchar("id", { length: 36 }).primaryKey().$defaultFn(() => crypto.randomUUID())`,
				Module:  modules[d],
				Symbols: []string{"varchar"},
			}
		}
	}
	if d == SQLite {
		return ColumnSpec{
			Expr:    `integer("id").primaryKey({ autoIncrement: true })`,
			Module:  modules[d],
			Symbols: []string{"integer"},
		}
	}
	// pg-core and mysql-core both export serial.
	return ColumnSpec{
		Expr:    `serial("id").primaryKey()`,
		Module:  modules[d],
		Symbols: []string{"serial"},
	}
}

// TimestampColumns returns the created_at/updated_at pair for a dialect.
func TimestampColumns(d Dialect) []ColumnSpec {
	if d == SQLite {
		return []ColumnSpec{
			{
				Expr:    `integer("created_at", { mode: "timestamp" }).notNull().$defaultFn(() => new Date())`,
				Module:  modules[d],
				Symbols: []string{"integer"},
			},
			{
				Expr:    `integer("updated_at", { mode: "timestamp" }).notNull().$defaultFn(() => new Date())`,
				Module:  modules[d],
				Symbols: []string{"integer"},
			},
		}
	}
	return []ColumnSpec{
		{
			Expr:    `timestamp("created_at").defaultNow().notNull()`,
			Module:  modules[d],
			Symbols: []string{"timestamp"},
		},
		{
			Expr:    `timestamp("updated_at").defaultNow().notNull()`,
			Module:  modules[d],
			Symbols: []string{"timestamp"},
		},
	}
}

// CheckTotality verifies every (kind, dialect) pair has a mapping. Called
// from tests and before generation so a missing entry fails loudly instead
// of defaulting.
func CheckTotality() error {
	var missing []string
	for _, k := range field.Kinds {
		byDialect, ok := columnTable[k]
		if !ok {
			missing = append(missing, string(k))
			continue
		}
		for _, d := range All {
			if _, ok := byDialect[d]; !ok {
				missing = append(missing, fmt.Sprintf("%s/%s", k, d))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnmappedType, strings.Join(missing, ", "))
	}
	return nil
}

// jsStringArray renders values as a JS array literal: ["a", "b"].
func jsStringArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
