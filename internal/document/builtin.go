package document

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var builtinFS embed.FS

// loadBuiltin loads the built-in template for kind.
func loadBuiltin(kind Kind) (*Template, error) {
	path := "templates/" + string(kind) + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, err
	}
	tmpl.Source = SourceBuiltin
	return tmpl, nil
}

// mustBuiltin is for the package-level render functions; the built-ins are
// compiled in, so a failure here is a build defect.
func mustBuiltin(kind Kind) *Template {
	tmpl, err := loadBuiltin(kind)
	if err != nil {
		panic(err)
	}
	return tmpl
}
