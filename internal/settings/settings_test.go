package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults(t *testing.T) {
	want := Settings{
		DefaultJurisdiction: "US-Federal",
		FirmName:            "Your Law Firm",
		AttorneyName:        "Attorney Name",
		BarNumber:           "Bar #12345",
	}
	if diff := cmp.Diff(want, Defaults()); diff != "" {
		t.Errorf("Defaults() mismatch (-want +got):\n%s", diff)
	}
}

// TestMerge_EverySubset checks all 16 combinations of persisted keys.
func TestMerge_EverySubset(t *testing.T) {
	persisted := Settings{
		DefaultJurisdiction: "UK",
		FirmName:            "Doe LLP",
		AttorneyName:        "Jane Doe",
		BarNumber:           "999",
	}
	fields := Fields()

	for mask := 0; mask < 1<<len(fields); mask++ {
		raw := map[string]any{}
		want := Defaults()
		for i, field := range fields {
			if mask&(1<<i) != 0 {
				raw[string(field)] = persisted.Get(field)
				want = want.With(field, persisted.Get(field))
			}
		}

		got := Merge(raw)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Merge(%v) mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestMerge_ValueShapes(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		check func(t *testing.T, got Settings)
	}{
		{
			name: "nil map yields defaults",
			raw:  nil,
			check: func(t *testing.T, got Settings) {
				if got != Defaults() {
					t.Errorf("got %+v, want defaults", got)
				}
			},
		},
		{
			name: "empty string is kept",
			raw:  map[string]any{"firmName": ""},
			check: func(t *testing.T, got Settings) {
				if got.FirmName != "" {
					t.Errorf("FirmName = %q, want empty", got.FirmName)
				}
			},
		},
		{
			name: "integer bar number is formatted",
			raw:  map[string]any{"barNumber": 12345},
			check: func(t *testing.T, got Settings) {
				if got.BarNumber != "12345" {
					t.Errorf("BarNumber = %q, want %q", got.BarNumber, "12345")
				}
			},
		},
		{
			name: "null falls back to default",
			raw:  map[string]any{"attorneyName": nil},
			check: func(t *testing.T, got Settings) {
				if got.AttorneyName != "Attorney Name" {
					t.Errorf("AttorneyName = %q, want default", got.AttorneyName)
				}
			},
		},
		{
			name: "nested value falls back to default",
			raw:  map[string]any{"firmName": map[string]any{"name": "x"}},
			check: func(t *testing.T, got Settings) {
				if got.FirmName != "Your Law Firm" {
					t.Errorf("FirmName = %q, want default", got.FirmName)
				}
			},
		},
		{
			name: "unknown keys are ignored",
			raw:  map[string]any{"theme": "dark", "firmName": "Roe & Co"},
			check: func(t *testing.T, got Settings) {
				want := Defaults().With(FieldFirmName, "Roe & Co")
				if got != want {
					t.Errorf("got %+v, want %+v", got, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Merge(tt.raw))
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"firmName", FieldFirmName, false},
		{"firm-name", FieldFirmName, false},
		{"FIRM_NAME", FieldFirmName, false},
		{"attorney-name", FieldAttorneyName, false},
		{"barNumber", FieldBarNumber, false},
		{"bar-number", FieldBarNumber, false},
		{"defaultJurisdiction", FieldJurisdiction, false},
		{"default-jurisdiction", FieldJurisdiction, false},
		{"jurisdiction", FieldJurisdiction, false},
		{"email", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseField(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWith_ReplacesExactlyOneField(t *testing.T) {
	base := Defaults()
	for _, field := range Fields() {
		got := base.With(field, "**bold** [link](x)")
		for _, other := range Fields() {
			want := base.Get(other)
			if other == field {
				want = "**bold** [link](x)"
			}
			if got.Get(other) != want {
				t.Errorf("With(%s): %s = %q, want %q", field, other, got.Get(other), want)
			}
		}
	}
}

func TestWith_UnknownFieldIsNoop(t *testing.T) {
	if got := Defaults().With(Field("email"), "x"); got != Defaults() {
		t.Errorf("With(unknown) changed settings: %+v", got)
	}
}

func TestFieldLabels(t *testing.T) {
	for _, field := range Fields() {
		if field.Label() == "" || field.Description() == "" {
			t.Errorf("field %s is missing label or description", field)
		}
	}
}

func TestJurisdictions(t *testing.T) {
	codes := make([]string, 0, len(Jurisdictions()))
	for _, j := range Jurisdictions() {
		codes = append(codes, j.Code)
	}
	want := []string{"US-Federal", "US-California", "US-New-York", "US-Texas", "US-Florida", "UK", "Canada"}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Errorf("Jurisdictions() codes mismatch (-want +got):\n%s", diff)
	}

	if !IsKnownJurisdiction("US-Texas") {
		t.Error("US-Texas should be known")
	}
	if IsKnownJurisdiction("US-Ohio") {
		t.Error("US-Ohio should not be selectable")
	}
	if got := JurisdictionLabel("UK"); got != "United Kingdom" {
		t.Errorf("JurisdictionLabel(UK) = %q", got)
	}
	if got := JurisdictionLabel("US-Ohio"); got != "US-Ohio" {
		t.Errorf("JurisdictionLabel(US-Ohio) = %q, want verbatim", got)
	}
}

func TestJurisdictions_ReturnsCopy(t *testing.T) {
	list := Jurisdictions()
	list[0].Code = "changed"
	if Jurisdictions()[0].Code != "US-Federal" {
		t.Error("Jurisdictions() exposed internal slice")
	}
}
