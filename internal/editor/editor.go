// Package editor opens created documents in the user's editor, the CLI
// equivalent of focusing a newly created note.
package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/gorewood/docket/internal/output"
	"github.com/gorewood/docket/internal/vault"
)

// Runner executes a resolved editor command.
type Runner func(ctx context.Context, name string, args ...string) error

// Opener opens documents with an editor command such as "code --wait".
// An empty command makes Open a no-op.
type Opener struct {
	command string
	run     Runner
}

// New creates an Opener for command. The command is split with POSIX shell
// quoting rules, so "subl -w" and "'/Applications/My Editor' --new" both work.
func New(command string) *Opener {
	return &Opener{command: command, run: runAttached}
}

// WithRunner replaces the process runner. Returns the opener for chaining.
func (o *Opener) WithRunner(run Runner) *Opener {
	o.run = run
	return o
}

// Open opens the document at h.Path. Documents without a local path
// (remote stores) and an unconfigured editor are skipped silently.
func (o *Opener) Open(ctx context.Context, h vault.Handle) error {
	if o == nil || o.command == "" || h.Path == "" {
		return nil
	}

	words, err := shellquote.Split(o.command)
	if err != nil {
		return output.NewUserError("invalid editor command " + o.command + ": " + err.Error())
	}
	if len(words) == 0 {
		return nil
	}

	args := append(words[1:], h.Path)
	if err := o.run(ctx, words[0], args...); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return output.NewSystemError("editor not found: "+words[0], err)
		}
		return output.NewSystemError("editor exited with error: "+err.Error(), err)
	}
	return nil
}

func runAttached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
