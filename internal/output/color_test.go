package output

import (
	"bytes"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		value   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{" Always ", ColorAlways, false},
		{"NEVER", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColorMode(tt.value)
			if tt.wantErr {
				if GetExitCode(err) != ExitUserError {
					t.Fatalf("err = %v, want user error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestColorMode_Enabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorAuto.Enabled(&buf) {
		t.Error("auto should not style a buffer")
	}
	if !ColorAlways.Enabled(&buf) {
		t.Error("always should style a buffer")
	}
	if ColorNever.Enabled(&buf) {
		t.Error("never should not style")
	}
}
