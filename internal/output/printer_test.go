package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrinter_ErrorJSON(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]any
	}{
		{
			name: "collision",
			err:  NewConflictError("file already exists: Contract-2024-03-05.md", nil),
			want: map[string]any{"error": "file already exists: Contract-2024-03-05.md", "code": float64(ExitConflict)},
		},
		{
			name: "settings unreadable",
			err:  NewSystemError("reading settings: permission denied", nil),
			want: map[string]any{"error": "reading settings: permission denied", "code": float64(ExitSystemError)},
		},
		{
			name: "uncoded error is a user error",
			err:  errors.New(`unknown template kind "lease"`),
			want: map[string]any{"error": `unknown template kind "lease"`, "code": float64(ExitUserError)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			NewPrinter(&out, true, false).WithStderr(&errOut).Error(tt.err)

			var got map[string]any
			if err := json.Unmarshal(out.Bytes(), &got); err != nil {
				t.Fatalf("stdout is not JSON: %v\n%s", err, out.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("error document mismatch (-want +got):\n%s", diff)
			}
			if errOut.Len() != 0 {
				t.Errorf("JSON errors belong on stdout, stderr got %q", errOut.String())
			}
		})
	}
}

func TestPrinter_ErrorHuman(t *testing.T) {
	var out, errOut bytes.Buffer
	NewPrinter(&out, false, false).WithStderr(&errOut).
		Error(NewConflictError("file already exists: Contract-2024-03-05.md", nil))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if want := "Error: file already exists: Contract-2024-03-05.md\n"; errOut.String() != want {
		t.Errorf("stderr = %q, want %q", errOut.String(), want)
	}
}

func TestPrinter_Result(t *testing.T) {
	var out bytes.Buffer
	result := struct {
		Status   string `json:"status"`
		Filename string `json:"filename"`
	}{"created", "Client-Intake-2024-03-05.md"}

	if err := NewPrinter(&out, true, false).Result(result); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"status\": \"created\",\n  \"filename\": \"Client-Intake-2024-03-05.md\"\n}\n"
	if out.String() != want {
		t.Errorf("Result() wrote %q, want %q", out.String(), want)
	}
}

func TestPrinter_Hint(t *testing.T) {
	var out, errOut bytes.Buffer
	NewPrinter(&out, false, false).WithStderr(&errOut).Hint("Use --force to overwrite it")

	if out.Len() != 0 {
		t.Errorf("hint should not go to stdout: %q", out.String())
	}
	if errOut.String() != "Use --force to overwrite it\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_Details(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false, false).Details("Settings", []Detail{
		{Label: "Default Jurisdiction", Value: "US-Texas (Texas)"},
		{Label: "Firm Name", Value: "Doe LLP"},
	})

	want := "Settings\n" +
		"  Default Jurisdiction:  US-Texas (Texas)\n" +
		"  Firm Name:             Doe LLP\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_Table(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false, false).Table(
		[]string{"", "Code", "Label"},
		[][]string{
			{"*", "US-Federal", "US Federal"},
			{"", "UK", "United Kingdom"},
		},
	)

	want := "   Code        Label\n" +
		"*  US-Federal  US Federal\n" +
		"   UK          United Kingdom\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Table mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_TableWithoutHeaders(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false, false).Table(nil, [][]string{{"x"}})
	if out.Len() != 0 {
		t.Errorf("Table(nil) wrote %q", out.String())
	}
}
