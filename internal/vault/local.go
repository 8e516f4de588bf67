package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gorewood/docket/internal/fileutil"
	"github.com/gorewood/docket/internal/output"
)

// Local creates documents as files in a directory.
type Local struct {
	dir       string
	overwrite bool
}

// NewLocal creates a Local vault rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// WithOverwrite makes Create replace an existing file instead of failing.
// Returns the vault for chaining.
func (l *Local) WithOverwrite(overwrite bool) *Local {
	l.overwrite = overwrite
	return l
}

// Dir returns the vault directory.
func (l *Local) Dir() string {
	return l.dir
}

// Create writes content to <dir>/<name>. Without overwrite the file is
// created exclusively, and an existing file (even one created concurrently)
// is a conflict error. With overwrite it is replaced atomically.
func (l *Local) Create(_ context.Context, name, content string) (Handle, error) {
	if err := validateName(name); err != nil {
		return Handle{}, err
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return Handle{}, output.NewSystemError("failed to create vault directory", err)
	}

	path := filepath.Join(l.dir, name)
	write := fileutil.WriteExclusive
	if l.overwrite {
		write = fileutil.WriteAtomic
	}
	if err := write(path, []byte(content), 0o644); err != nil {
		if errors.Is(err, fileutil.ErrExists) {
			return Handle{}, output.NewConflictError("file already exists: "+name, err)
		}
		return Handle{}, output.NewSystemError("failed to write "+name+": "+err.Error(), err)
	}

	location := path
	if abs, err := filepath.Abs(path); err == nil {
		location = abs
	}
	return Handle{Name: name, Location: location, Path: location}, nil
}
