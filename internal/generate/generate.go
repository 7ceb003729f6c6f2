// Package generate turns a parsed model into the concrete artifacts the
// forge commands write: the merged schema table plus rendered actions,
// queries, API routes, and pages.
package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/example/forge/internal/dialect"
	"github.com/example/forge/internal/field"
	"github.com/example/forge/internal/naming"
	"github.com/example/forge/internal/project"
	"github.com/example/forge/internal/schema"
	scaffoldtmpl "github.com/example/forge/internal/templates/scaffold"
)

// FieldView is the template-facing view of one parsed field.
type FieldView struct {
	Name       string   // JS property name, camelCase
	Column     string   // column name, snake_case
	Label      string   // human label for UI
	TSType     string   // TypeScript type
	Input      string   // HTML input type or "textarea"/"select"
	FormExpr   string   // expression extracting the value from FormData
	Required   bool
	EnumValues []string
}

// Model carries everything the templates need for one generation run.
type Model struct {
	Names        naming.Names
	Fields       []FieldView
	Alias        string
	Dialect      dialect.Dialect
	UUID         bool
	Timestamps   bool
	IDType       string // "number" or "string" (uuid primary keys)
	IDFromParams string // route-param conversion expression
	HasReturning bool   // mysql's drizzle driver has no .returning()
	DisplayField string // field shown in list links

	settings project.Settings
	parsed   []field.Field
}

// Artifact is one file to write.
type Artifact struct {
	Path    string
	Content string
}

// Build assembles the model for a generation run. Fields must already be
// parsed and validated.
func Build(name string, fields []field.Field, s project.Settings, uuid, timestamps bool) Model {
	m := Model{
		Names:        naming.For(name),
		Alias:        s.Alias,
		Dialect:      s.Dialect,
		UUID:         uuid,
		Timestamps:   timestamps,
		IDType:       "number",
		IDFromParams: "Number(params.id)",
		HasReturning: s.Dialect != dialect.MySQL,
		DisplayField: "id",
		settings:     s,
		parsed:       fields,
	}
	if uuid {
		m.IDType = "string"
		m.IDFromParams = "params.id"
	}

	for _, f := range fields {
		v := viewOf(f)
		if m.DisplayField == "id" && (f.Kind == field.KindString || f.Kind == field.KindText) {
			m.DisplayField = v.Name
		}
		m.Fields = append(m.Fields, v)
	}
	return m
}

// SchemaTable maps the model's fields onto a mergeable table definition.
func (m Model) SchemaTable() (schema.Table, error) {
	t := schema.Table{
		Name:    m.Names.Table,
		Const:   m.Names.PluralCamel,
		Dialect: m.Dialect,
	}

	id := dialect.IDColumn(m.Dialect, m.UUID)
	t.Columns = append(t.Columns, schema.Column{Key: "id", Spec: id})

	for _, f := range m.parsed {
		spec, err := dialect.MapType(f, m.Dialect)
		if err != nil {
			return schema.Table{}, err
		}
		t.Columns = append(t.Columns, schema.Column{Key: f.Name, Spec: spec})
	}

	if m.Timestamps {
		ts := dialect.TimestampColumns(m.Dialect)
		t.Columns = append(t.Columns,
			schema.Column{Key: "createdAt", Spec: ts[0]},
			schema.Column{Key: "updatedAt", Spec: ts[1]},
		)
	}
	return t, nil
}

// SchemaPath returns where the merged schema file lives.
func (m Model) SchemaPath() string { return m.settings.SchemaPath() }

// Actions renders the server-actions file.
func (m Model) Actions() (Artifact, error) {
	return m.render("actions.ts", filepath.Join(m.settings.LibDir(), "actions", m.Names.Route+".ts"))
}

// Queries renders the query helpers file.
func (m Model) Queries() (Artifact, error) {
	return m.render("queries.ts", filepath.Join(m.settings.LibDir(), "queries", m.Names.Route+".ts"))
}

// APIRoutes renders the REST route handlers (collection + member).
func (m Model) APIRoutes() ([]Artifact, error) {
	collection, err := m.render("route.ts", filepath.Join(m.settings.AppDir(), "api", m.Names.Route, "route.ts"))
	if err != nil {
		return nil, err
	}
	member, err := m.render("route-id.ts", filepath.Join(m.settings.AppDir(), "api", m.Names.Route, "[id]", "route.ts"))
	if err != nil {
		return nil, err
	}
	return []Artifact{collection, member}, nil
}

// Pages renders the UI pages: list, detail, and new-record form.
func (m Model) Pages() ([]Artifact, error) {
	list, err := m.render("list-page.tsx", filepath.Join(m.settings.AppDir(), m.Names.Route, "page.tsx"))
	if err != nil {
		return nil, err
	}
	detail, err := m.render("detail-page.tsx", filepath.Join(m.settings.AppDir(), m.Names.Route, "[id]", "page.tsx"))
	if err != nil {
		return nil, err
	}
	form, err := m.render("new-page.tsx", filepath.Join(m.settings.AppDir(), m.Names.Route, "new", "page.tsx"))
	if err != nil {
		return nil, err
	}
	return []Artifact{list, detail, form}, nil
}

// ArtifactPaths lists every path the given command family would write for
// this model, schema file excluded. Used by destroy.
func (m Model) ArtifactPaths(kind string) []string {
	var paths []string
	api := []string{
		filepath.Join(m.settings.AppDir(), "api", m.Names.Route, "route.ts"),
		filepath.Join(m.settings.AppDir(), "api", m.Names.Route, "[id]", "route.ts"),
	}
	resource := append([]string{
		filepath.Join(m.settings.LibDir(), "actions", m.Names.Route+".ts"),
		filepath.Join(m.settings.LibDir(), "queries", m.Names.Route+".ts"),
	}, api...)
	pages := []string{
		filepath.Join(m.settings.AppDir(), m.Names.Route, "page.tsx"),
		filepath.Join(m.settings.AppDir(), m.Names.Route, "[id]", "page.tsx"),
		filepath.Join(m.settings.AppDir(), m.Names.Route, "new", "page.tsx"),
	}

	switch kind {
	case "api":
		paths = api
	case "resource":
		paths = resource
	case "scaffold":
		paths = append(resource, pages...)
	}
	return paths
}

func (m Model) render(name, path string) (Artifact, error) {
	content, err := scaffoldtmpl.Get(name)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to load template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(scaffoldtmpl.TemplateFuncs()).Parse(content)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return Artifact{}, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return Artifact{Path: path, Content: buf.String()}, nil
}

// viewOf derives the template-facing view of a field.
func viewOf(f field.Field) FieldView {
	v := FieldView{
		Name:       f.Name,
		Column:     naming.ColumnName(f.Name),
		Label:      naming.Human(f.Name),
		Required:   !f.Nullable,
		EnumValues: f.EnumValues,
	}

	switch f.Kind {
	case field.KindString, field.KindUUID, field.KindDecimal:
		v.TSType, v.Input = "string", "text"
	case field.KindText:
		v.TSType, v.Input = "string", "textarea"
	case field.KindEnum:
		v.TSType, v.Input = "string", "select"
	case field.KindInteger, field.KindBigint, field.KindFloat, field.KindReference:
		v.TSType, v.Input = "number", "number"
	case field.KindBoolean:
		v.TSType, v.Input = "boolean", "checkbox"
		v.Required = false // a required checkbox cannot be unchecked
	case field.KindTimestamp, field.KindDate:
		v.TSType, v.Input = "Date", "date"
	case field.KindJSON:
		v.TSType, v.Input = "unknown", "textarea"
	}

	v.FormExpr = formExpr(f, v)
	return v
}

// formExpr builds the FormData extraction expression for a field.
func formExpr(f field.Field, v FieldView) string {
	get := fmt.Sprintf("formData.get(%q)", v.Name)
	var expr string
	switch v.TSType {
	case "number":
		expr = fmt.Sprintf("Number(%s)", get)
	case "boolean":
		return fmt.Sprintf("%s === %q", get, "on")
	case "Date":
		expr = fmt.Sprintf("new Date(String(%s))", get)
	case "unknown":
		expr = fmt.Sprintf("JSON.parse(String(%s))", get)
	default:
		expr = fmt.Sprintf("String(%s)", get)
	}
	if f.Nullable {
		return fmt.Sprintf("%s ? %s : null", get, expr)
	}
	return expr
}
