package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/docket/internal/fileutil"
)

// FilePersister stores settings in a single file. A path ending in .json
// (such as a notes plugin's data.json) is written back as JSON; any other
// path is written as YAML.
type FilePersister struct {
	path string
}

// NewFilePersister creates a FilePersister for path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Path returns the settings file path.
func (p *FilePersister) Path() string {
	return p.path
}

// Load reads the settings file. A missing file yields nil data.
func (p *FilePersister) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", p.path, err)
	}
	return data, nil
}

// Save replaces the settings file atomically, creating its directory.
func (p *FilePersister) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if strings.EqualFold(filepath.Ext(p.path), ".json") {
		converted, err := yamlToJSON(data)
		if err != nil {
			return err
		}
		data = converted
	}
	if err := fileutil.WriteAtomic(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("converting settings to JSON: %w", err)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("converting settings to JSON: %w", err)
	}
	return append(out, '\n'), nil
}
