package main

import (
	"strings"
	"testing"

	"github.com/gorewood/docket/internal/output"
)

func TestHistoryCommand_Human(t *testing.T) {
	vaultDir := setupVault(t)

	out, err := executeCmd(t, vaultDir, "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No documents created yet") {
		t.Errorf("empty history output = %q", out)
	}

	for _, kind := range []string{"contract", "memo"} {
		if out, err := executeCmd(t, vaultDir, "new", kind, "--no-open", "--json"); err != nil {
			t.Fatalf("new %s failed: %v\n%s", kind, err, out)
		}
	}

	out, err = executeCmd(t, vaultDir, "history", "--last", "1", "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Legal-Memo-") || strings.Contains(out, "Contract-") {
		t.Errorf("--last 1 should show only the newest document: %q", out)
	}
	if !strings.Contains(out, "ago") && !strings.Contains(out, "now") {
		t.Errorf("created column should be relative: %q", out)
	}
}

func TestHistoryCommand_NegativeLast(t *testing.T) {
	vaultDir := setupVault(t)
	_, err := executeCmd(t, vaultDir, "history", "--last", "-1", "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("err = %v, want user error", err)
	}
}
