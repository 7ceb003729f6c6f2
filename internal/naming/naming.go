// Package naming derives the casing and pluralization variants templates
// need from a single model name.
package naming

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Names holds every variant of a model name used by the generators.
type Names struct {
	Camel        string // "blogPost"
	Pascal       string // "BlogPost"
	Snake        string // "blog_post"
	Kebab        string // "blog-post"
	PluralCamel  string // "blogPosts"
	PluralPascal string // "BlogPosts"
	Table        string // "blog_posts" (schema table name)
	Route        string // "blog-posts" (URL path segment)
	Human        string // "Blog Post"
	HumanPlural  string // "Blog Posts"
}

// For derives all name variants from a raw model name. The input may be
// camelCase, PascalCase, snake_case, or kebab-case, singular or plural;
// the result is always anchored on the singular form.
func For(raw string) Names {
	singular := inflect.Singularize(inflect.Underscore(raw))
	plural := inflect.Pluralize(singular)

	return Names{
		Camel:        inflect.CamelizeDownFirst(singular),
		Pascal:       inflect.Camelize(singular),
		Snake:        singular,
		Kebab:        strings.ReplaceAll(singular, "_", "-"),
		PluralCamel:  inflect.CamelizeDownFirst(plural),
		PluralPascal: inflect.Camelize(plural),
		Table:        plural,
		Route:        strings.ReplaceAll(plural, "_", "-"),
		Human:        inflect.Titleize(singular),
		HumanPlural:  inflect.Titleize(plural),
	}
}

// Human converts an identifier to a human label without touching its
// plurality, e.g. "publishedAt" -> "Published At".
func Human(raw string) string {
	return inflect.Titleize(inflect.Underscore(raw))
}

// ColumnName converts a camelCase field name to its snake_case column name.
func ColumnName(fieldName string) string {
	return inflect.Underscore(fieldName)
}

// ForeignKey derives the foreign-key column name for a reference target,
// e.g. "user" -> "user_id".
func ForeignKey(target string) string {
	return inflect.Singularize(inflect.Underscore(target)) + "_id"
}
