// Package vault creates generated documents in their destination store: a
// notes vault directory on disk or a bucket prefix in S3.
package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorewood/docket/internal/output"
)

// Handle identifies a created document.
type Handle struct {
	Name     string `json:"name"`           // file name as requested
	Location string `json:"location"`       // absolute path or s3:// URI
	Path     string `json:"path,omitempty"` // local path; empty for remote stores
}

// Creator creates one document. Implementations reject a name that already
// exists with a conflict error unless they were configured to overwrite.
type Creator interface {
	Create(ctx context.Context, name, content string) (Handle, error)
}

// validateName rejects names that would escape the vault root.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return output.NewUserError(fmt.Sprintf("invalid document name %q", name))
	}
	return nil
}
