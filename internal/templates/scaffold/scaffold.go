// Package scaffold holds the embedded templates forge renders into the
// host project.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed *.tmpl
var scaffoldTemplates embed.FS

// Get returns the content of a template by name (e.g. "actions.ts").
func Get(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile(name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the function map shared by all scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":    strings.Join,
		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
	}
}
