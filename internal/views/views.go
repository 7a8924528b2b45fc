// Package views holds the HTML pages, compiled into the binary.
package views

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Load parses every page. Page templates are addressed by file name, e.g.
// "login.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"paragraphs": paragraphs,
	}).ParseFS(files, "templates/*.html")
}

// paragraphs splits a note body into its non-blank lines.
func paragraphs(body string) []string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	out := lines[:0]

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}
