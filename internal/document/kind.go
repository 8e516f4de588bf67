package document

import (
	"fmt"
	"strings"

	"github.com/gorewood/docket/internal/output"
)

// Kind is one of the document types docket can create.
type Kind string

// Supported kinds.
const (
	KindContract Kind = "contract"
	KindMemo     Kind = "memo"
	KindIntake   Kind = "intake"
)

// Kinds returns every supported kind in menu order.
func Kinds() []Kind {
	return []Kind{KindContract, KindMemo, KindIntake}
}

// ParseKind resolves a kind from its name or its file name prefix
// ("Legal-Memo", "client-intake").
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range Kinds() {
		if norm == string(kind) || norm == strings.ToLower(kind.Prefix()) {
			return kind, nil
		}
	}
	return "", output.NewUserError(fmt.Sprintf(
		"unknown template kind %q (want contract, memo, or intake)", name))
}

// Prefix is the file name prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindContract:
		return "Contract"
	case KindMemo:
		return "Legal-Memo"
	case KindIntake:
		return "Client-Intake"
	default:
		return string(k)
	}
}

// Title is the command title for the kind.
func (k Kind) Title() string {
	switch k {
	case KindContract:
		return "Contract Template"
	case KindMemo:
		return "Legal Memo Template"
	case KindIntake:
		return "Client Intake Form"
	default:
		return string(k)
	}
}

func (k Kind) String() string {
	return string(k)
}
