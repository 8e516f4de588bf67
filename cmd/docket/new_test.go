package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/output"
	"github.com/gorewood/docket/internal/settings"
)

func TestNewCommand_CreatesDocument(t *testing.T) {
	tests := []struct {
		kind     string
		filename string
		render   func(settings.Settings, time.Time) string
	}{
		{"contract", "Contract-2024-03-05.md", document.RenderContract},
		{"memo", "Legal-Memo-2024-03-05.md", document.RenderMemo},
		{"intake", "Client-Intake-2024-03-05.md", document.RenderIntake},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			vaultDir := setupVault(t)

			out, err := executeCmd(t, vaultDir, "new", tt.kind, "--date", "2024-03-05", "--json")
			if err != nil {
				t.Fatalf("new failed: %v\n%s", err, out)
			}

			result := decodeJSON(t, out)
			if result["status"] != "created" || result["filename"] != tt.filename {
				t.Errorf("result = %v", result)
			}

			data, err := os.ReadFile(filepath.Join(vaultDir, tt.filename))
			if err != nil {
				t.Fatalf("document not created: %v", err)
			}
			day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
			if string(data) != tt.render(settings.Defaults(), day) {
				t.Errorf("content mismatch:\n%s", data)
			}
		})
	}
}

func TestNewCommand_HumanNotification(t *testing.T) {
	vaultDir := setupVault(t)

	out, err := executeCmd(t, vaultDir, "new", "memo", "--date", "2024-03-05", "--no-open")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created memo template: Legal-Memo-2024-03-05.md") {
		t.Errorf("output should contain the success notification: %q", out)
	}
}

func TestNewCommand_Collision(t *testing.T) {
	vaultDir := setupVault(t)
	args := []string{"new", "contract", "--date", "2024-03-05"}

	if out, err := executeCmd(t, vaultDir, args...); err != nil {
		t.Fatalf("first new failed: %v\n%s", err, out)
	}
	original, _ := os.ReadFile(filepath.Join(vaultDir, "Contract-2024-03-05.md"))

	t.Run("human", func(t *testing.T) {
		out, err := executeCmd(t, vaultDir, args...)
		if output.GetExitCode(err) != output.ExitConflict {
			t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitConflict)
		}
		if !strings.Contains(out, "Error: file already exists: Contract-2024-03-05.md") {
			t.Errorf("output should carry the error message verbatim: %q", out)
		}
		if strings.Count(out, "file already exists") != 1 {
			t.Errorf("error should be reported once: %q", out)
		}
		if !strings.Contains(out, "Use 'docket new contract --force' to overwrite it") {
			t.Errorf("output should suggest --force: %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCmd(t, vaultDir, append(args, "--json")...)
		if err == nil {
			t.Fatal("expected collision error")
		}
		result := decodeJSON(t, out)
		if result["error"] != "file already exists: Contract-2024-03-05.md" {
			t.Errorf("error = %v", result["error"])
		}
		if result["code"] != float64(output.ExitConflict) {
			t.Errorf("code = %v, want %d", result["code"], output.ExitConflict)
		}
	})

	current, _ := os.ReadFile(filepath.Join(vaultDir, "Contract-2024-03-05.md"))
	if string(current) != string(original) {
		t.Error("existing document must not change on collision")
	}
}

func TestNewCommand_Force(t *testing.T) {
	vaultDir := setupVault(t)
	path := filepath.Join(vaultDir, "Contract-2024-03-05.md")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := executeCmd(t, vaultDir, "new", "contract", "--date", "2024-03-05", "--force", "--json")
	if err != nil {
		t.Fatalf("new --force failed: %v\n%s", err, out)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "# Contract Template") {
		t.Errorf("document should be overwritten, got %q", data)
	}
}

func TestNewCommand_Errors(t *testing.T) {
	vaultDir := setupVault(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown kind", []string{"new", "will", "--json"}, output.ExitUserError},
		{"bad date", []string{"new", "memo", "--date", "03/05/2024", "--json"}, output.ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, vaultDir, tt.args...)
			if output.GetExitCode(err) != tt.code {
				t.Errorf("exit code = %d, want %d (%s)", output.GetExitCode(err), tt.code, out)
			}
			decodeJSON(t, out)
		})
	}

	entries, _ := os.ReadDir(vaultDir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".md") {
			t.Errorf("no document should be created, found %s", e.Name())
		}
	}
}

func TestNewCommand_UsesSavedSettingsAndRecordsHistory(t *testing.T) {
	vaultDir := setupVault(t)

	steps := [][]string{
		{"settings", "set", "attorney-name", "Jane Doe", "--json"},
		{"settings", "set", "jurisdiction", "US-Texas", "--json"},
		{"new", "memo", "--date", "2024-03-05", "--json"},
	}
	for _, args := range steps {
		if out, err := executeCmd(t, vaultDir, args...); err != nil {
			t.Fatalf("%v failed: %v\n%s", args, err, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(vaultDir, "Legal-Memo-2024-03-05.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "**FROM:** Jane Doe") {
		t.Errorf("memo should use saved attorney name:\n%s", data)
	}
	if !strings.Contains(string(data), "US-Texas") {
		t.Errorf("memo should use saved jurisdiction:\n%s", data)
	}

	out, err := executeCmd(t, vaultDir, "history", "--json")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	if result["count"] != float64(1) {
		t.Errorf("history count = %v, want 1", result["count"])
	}
}

func TestNewCommand_HistoryDisabled(t *testing.T) {
	vaultDir := setupVault(t)
	t.Setenv("DOCKET_HISTORY_DB", "off")

	if out, err := executeCmd(t, vaultDir, "new", "intake", "--date", "2024-03-05", "--json"); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}

	_, err := executeCmd(t, vaultDir, "history", "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("history with DOCKET_HISTORY_DB=off: err = %v, want user error", err)
	}
}

func TestNewCommand_HistoryUnavailableJSON(t *testing.T) {
	vaultDir := setupVault(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCKET_HISTORY_DB", filepath.Join(blocker, "history.db"))

	out, err := executeCmd(t, vaultDir, "new", "intake", "--date", "2024-03-05", "--json")
	if err != nil {
		t.Fatalf("new should succeed without history: %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	if result["status"] != "created" {
		t.Errorf("status = %v, want created", result["status"])
	}
	warnings, ok := result["warnings"].([]any)
	if !ok || len(warnings) != 1 || !strings.Contains(warnings[0].(string), "history") {
		t.Errorf("warnings = %v, want one history warning", result["warnings"])
	}
}

func TestNewCommand_HelpListsKinds(t *testing.T) {
	vaultDir := setupVault(t)

	out, err := executeCmd(t, vaultDir, "new", "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, kind := range document.Kinds() {
		if !strings.Contains(out, kind.Prefix()+"-<date>.md") || !strings.Contains(out, kind.Title()) {
			t.Errorf("help should list %s with its file pattern and title:\n%s", kind, out)
		}
	}
}
