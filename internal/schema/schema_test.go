package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/forge/internal/dialect"
)

func col(key, expr string, module string, symbols ...string) Column {
	return Column{Key: key, Spec: dialect.ColumnSpec{Expr: expr, Module: module, Symbols: symbols}}
}

func postsTable() Table {
	const pg = "drizzle-orm/pg-core"
	return Table{
		Name:    "posts",
		Const:   "posts",
		Dialect: dialect.Postgres,
		Columns: []Column{
			col("id", `serial("id").primaryKey()`, pg, "serial"),
			col("title", `varchar("title", { length: 256 }).notNull()`, pg, "varchar"),
			col("body", `text("body").notNull()`, pg, "text"),
		},
	}
}

func TestMergeFreshFile(t *testing.T) {
	out, merged, err := Merge("", postsTable(), false)
	require.NoError(t, err)
	assert.True(t, merged)

	assert.Contains(t, out, `import { pgTable, serial, varchar, text } from "drizzle-orm/pg-core";`)
	assert.Contains(t, out, `export const posts = pgTable("posts", {`)
	assert.Contains(t, out, `  title: varchar("title", { length: 256 }).notNull(),`)
	assert.True(t, strings.HasSuffix(out, "});\n"))
}

func TestMergeAppendsSecondTable(t *testing.T) {
	first, _, err := Merge("", postsTable(), false)
	require.NoError(t, err)

	comments := Table{
		Name:    "comments",
		Const:   "comments",
		Dialect: dialect.Postgres,
		Columns: []Column{
			col("id", `serial("id").primaryKey()`, "drizzle-orm/pg-core", "serial"),
			col("postId", `integer("post_id").references(() => posts.id).notNull()`, "drizzle-orm/pg-core", "integer"),
		},
	}

	out, merged, err := Merge(first, comments, false)
	require.NoError(t, err)
	assert.True(t, merged)

	// One import statement per module path, symbols unioned.
	assert.Equal(t, 1, strings.Count(out, `from "drizzle-orm/pg-core"`))
	assert.Contains(t, out, `import { pgTable, serial, varchar, text, integer } from "drizzle-orm/pg-core";`)
	// Both blocks present, declaration order preserved.
	posts := strings.Index(out, `export const posts`)
	com := strings.Index(out, `export const comments`)
	require.True(t, posts >= 0 && com >= 0)
	assert.Less(t, posts, com)
}

func TestMergeImportUnion(t *testing.T) {
	src := "import { pgTable, serial } from \"drizzle-orm/pg-core\";\n\n" +
		"export const users = pgTable(\"users\", {\n  id: serial(\"id\").primaryKey(),\n});\n"

	tbl := Table{
		Name:    "posts",
		Const:   "posts",
		Dialect: dialect.Postgres,
		Columns: []Column{
			col("id", `serial("id").primaryKey()`, "drizzle-orm/pg-core", "serial"),
			col("title", `varchar("title", { length: 256 }).notNull()`, "drizzle-orm/pg-core", "varchar"),
		},
	}

	out, merged, err := Merge(src, tbl, false)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Contains(t, out, `import { pgTable, serial, varchar } from "drizzle-orm/pg-core";`)
	assert.Equal(t, 1, strings.Count(out, "import "))
}

func TestMergeNoOpWhenTableExists(t *testing.T) {
	first, _, err := Merge("", postsTable(), false)
	require.NoError(t, err)

	out, merged, err := Merge(first, postsTable(), false)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, first, out, "no-op merge must leave the file byte-identical")
}

func TestMergeForceReplacesBlock(t *testing.T) {
	first, _, err := Merge("", postsTable(), false)
	require.NoError(t, err)

	redefined := postsTable()
	redefined.Columns = append(redefined.Columns,
		col("published", `boolean("published").notNull()`, "drizzle-orm/pg-core", "boolean"))

	out, merged, err := Merge(first, redefined, true)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 1, strings.Count(out, `export const posts = pgTable("posts", {`))
	assert.Contains(t, out, `published: boolean("published").notNull(),`)
}

func TestTableExistsAcrossDialects(t *testing.T) {
	sources := []string{
		"export const posts = pgTable(\"posts\", {\n  id: serial(\"id\").primaryKey(),\n});\n",
		"export const posts = sqliteTable(\"posts\", {\n  id: integer(\"id\").primaryKey({ autoIncrement: true }),\n});\n",
		"export const posts = mysqlTable(\"posts\", {\n  id: serial(\"id\").primaryKey(),\n});\n",
	}
	for _, src := range sources {
		assert.True(t, TableExists(src, "posts"), src)
		assert.False(t, TableExists(src, "comments"), src)
	}
}

func TestMergeCorruptImportLine(t *testing.T) {
	src := "import pgTable from 'drizzle-orm/pg-core'\n\nexport const users = pgTable(\"users\", {\n});\n"
	_, _, err := Merge(src, postsTable(), false)
	require.ErrorIs(t, err, ErrCorruptSchema)
}

func TestMergeUnterminatedBlock(t *testing.T) {
	src := "import { pgTable, serial } from \"drizzle-orm/pg-core\";\n\n" +
		"export const posts = pgTable(\"posts\", {\n  id: serial(\"id\").primaryKey(),\n"
	_, _, err := Merge(src, postsTable(), true)
	require.ErrorIs(t, err, ErrCorruptSchema)
}

func TestRemove(t *testing.T) {
	first, _, err := Merge("", postsTable(), false)
	require.NoError(t, err)

	out, removed, err := Remove(first, "posts")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NotContains(t, out, "export const posts")
	// Imports stay; pruning is out of scope.
	assert.Contains(t, out, `from "drizzle-orm/pg-core"`)

	same, removed, err := Remove(out, "posts")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, out, same)
}
