// Package templates embeds the HTML pages served by the controllers.
package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed html/*.html
var files embed.FS

// TicketsTableBody is the fragment re-rendered by the dashboard poller
const TicketsTableBody = "_tickets_tbody.html"

var funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Load parses every embedded page
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "html/*.html")
}

// Render executes a named template into a string
func Render(tmpl *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
