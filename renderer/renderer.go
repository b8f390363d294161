// Package renderer turns computed ledger metrics into console text and
// markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/glmetrics"
)

//go:embed templates/*
var templates embed.FS

// Lines writes the five metric lines, one per metric, to w.
func Lines(w io.Writer, s *glmetrics.Summary) error {
	out, err := renderTemplate("lines", "lines.txt", s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// renderTemplate renders an embedded template.
func renderTemplate(templateName, file string, data any) (string, error) {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return "", fmt.Errorf("reading template %q: %w", file, err)
	}

	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
