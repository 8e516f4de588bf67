package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template sources, in resolution order.
const (
	SourceVault   = "vault"
	SourceGlobal  = "global"
	SourceBuiltin = "built-in"
)

// Template is a document body with metadata from its frontmatter.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Content is the markdown body after frontmatter, ending in one newline.
	Content string `yaml:"-"`

	// Source is where the template was loaded from.
	Source string `yaml:"-"`
}

// TemplateInfo describes the template that will be used for a kind.
type TemplateInfo struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Path        string `json:"path,omitempty"`
	Overrides   string `json:"overrides,omitempty"` // source this one shadows, if any
}

// Library resolves templates for each kind from override directories and
// the built-ins. A nil Library, or one with empty directories, serves the
// built-ins only.
type Library struct {
	vaultDir  string
	globalDir string
}

// NewLibrary creates a Library. Either directory may be "".
func NewLibrary(vaultDir, globalDir string) *Library {
	return &Library{vaultDir: vaultDir, globalDir: globalDir}
}

func (l *Library) sources() []struct{ name, dir string } {
	if l == nil {
		return nil
	}
	return []struct{ name, dir string }{
		{SourceVault, l.vaultDir},
		{SourceGlobal, l.globalDir},
	}
}

// Load finds the template for kind.
// Resolution order: vault-local → user global → built-in.
func (l *Library) Load(kind Kind) (*Template, error) {
	for _, src := range l.sources() {
		tmpl, err := loadFromPath(src.dir, kind)
		if err == nil {
			tmpl.Source = src.name
			return tmpl, nil
		}
		if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, errNoDirectory) {
			return nil, err
		}
	}
	return loadBuiltin(kind)
}

// List reports, for every kind, which template Load would pick and which
// source it overrides.
func (l *Library) List() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(Kinds()))
	for _, kind := range Kinds() {
		builtin, err := loadBuiltin(kind)
		if err != nil {
			continue
		}
		info := TemplateInfo{
			Kind:        kind,
			Name:        builtin.Name,
			Description: builtin.Description,
			Source:      SourceBuiltin,
		}

		var found []TemplateInfo
		for _, src := range l.sources() {
			tmpl, loadErr := loadFromPath(src.dir, kind)
			if loadErr != nil {
				continue
			}
			found = append(found, TemplateInfo{
				Kind:        kind,
				Name:        firstNonEmpty(tmpl.Name, builtin.Name),
				Description: firstNonEmpty(tmpl.Description, builtin.Description),
				Source:      src.name,
				Path:        templatePath(src.dir, kind),
			})
		}
		if len(found) > 0 {
			info = found[0]
			info.Overrides = SourceBuiltin
			if len(found) > 1 {
				info.Overrides = found[1].Source
			}
		}
		infos = append(infos, info)
	}
	return infos
}

var errNoDirectory = errors.New("no directory")

func templatePath(dir string, kind Kind) string {
	return filepath.Join(dir, string(kind)+".md")
}

// loadFromPath attempts to load the template for kind from a directory.
func loadFromPath(dir string, kind Kind) (*Template, error) {
	if dir == "" {
		return nil, errNoDirectory
	}

	path := templatePath(dir, kind)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content) + "\n"
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
