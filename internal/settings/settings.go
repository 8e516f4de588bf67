// Package settings holds the firm and attorney details stamped into every
// generated document.
//
// Persisted values are merged over hard-coded defaults on load, so a Settings
// value is never partially populated. Keys the merge does not know about are
// carried through to the next save untouched.
package settings

import (
	"fmt"
	"strings"

	"github.com/gorewood/docket/internal/output"
)

// Settings is the full set of user-configurable fields.
type Settings struct {
	DefaultJurisdiction string `json:"defaultJurisdiction" yaml:"defaultJurisdiction"`
	FirmName            string `json:"firmName"            yaml:"firmName"`
	AttorneyName        string `json:"attorneyName"        yaml:"attorneyName"`
	BarNumber           string `json:"barNumber"           yaml:"barNumber"`
}

// Field names a single setting by its persisted key.
type Field string

// Known fields, in settings form order.
const (
	FieldFirmName     Field = "firmName"
	FieldAttorneyName Field = "attorneyName"
	FieldBarNumber    Field = "barNumber"
	FieldJurisdiction Field = "defaultJurisdiction"
)

// Fields returns every known field in settings form order.
func Fields() []Field {
	return []Field{FieldFirmName, FieldAttorneyName, FieldBarNumber, FieldJurisdiction}
}

// Defaults returns the values used for any field that was never persisted.
func Defaults() Settings {
	return Settings{
		DefaultJurisdiction: "US-Federal",
		FirmName:            "Your Law Firm",
		AttorneyName:        "Attorney Name",
		BarNumber:           "Bar #12345",
	}
}

// ParseField resolves a field name. It accepts the persisted key in any case
// ("firmName", "firmname") and the flag-style spelling ("firm-name",
// "firm_name"). "jurisdiction" is accepted for the jurisdiction field.
func ParseField(name string) (Field, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	if norm == "jurisdiction" {
		return FieldJurisdiction, nil
	}
	for _, field := range Fields() {
		if strings.ToLower(string(field)) == norm {
			return field, nil
		}
	}
	return "", output.NewUserError(fmt.Sprintf(
		"unknown settings field %q (want firm-name, attorney-name, bar-number, or jurisdiction)", name))
}

// Label is the human name shown next to the field in the settings form.
func (f Field) Label() string {
	switch f {
	case FieldFirmName:
		return "Firm Name"
	case FieldAttorneyName:
		return "Attorney Name"
	case FieldBarNumber:
		return "Bar Number"
	case FieldJurisdiction:
		return "Default Jurisdiction"
	default:
		return string(f)
	}
}

// Description is the help text shown under the field in the settings form.
func (f Field) Description() string {
	switch f {
	case FieldFirmName:
		return "Your law firm name"
	case FieldAttorneyName:
		return "Your full name as an attorney"
	case FieldBarNumber:
		return "Your bar admission number"
	case FieldJurisdiction:
		return "Default jurisdiction for legal documents"
	default:
		return ""
	}
}

// Get returns the value of one field. Unknown fields yield "".
func (s Settings) Get(f Field) string {
	switch f {
	case FieldFirmName:
		return s.FirmName
	case FieldAttorneyName:
		return s.AttorneyName
	case FieldBarNumber:
		return s.BarNumber
	case FieldJurisdiction:
		return s.DefaultJurisdiction
	default:
		return ""
	}
}

// With returns a copy of s with exactly one field replaced.
// The value is not validated. Unknown fields leave s unchanged.
func (s Settings) With(f Field, value string) Settings {
	switch f {
	case FieldFirmName:
		s.FirmName = value
	case FieldAttorneyName:
		s.AttorneyName = value
	case FieldBarNumber:
		s.BarNumber = value
	case FieldJurisdiction:
		s.DefaultJurisdiction = value
	}
	return s
}

// Merge overlays persisted values onto Defaults.
//
// Present string values are used verbatim, including "". Other scalars are
// formatted with fmt.Sprint (a bar number saved as a YAML integer still
// reads back). Null, maps and lists count as absent. Unknown keys are ignored.
func Merge(raw map[string]any) Settings {
	merged := Defaults()
	for _, field := range Fields() {
		if value, ok := scalarString(raw[string(field)]); ok {
			merged = merged.With(field, value)
		}
	}
	return merged
}

func scalarString(value any) (string, bool) {
	switch val := value.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

func isKnownKey(key string) bool {
	for _, field := range Fields() {
		if string(field) == key {
			return true
		}
	}
	return false
}
