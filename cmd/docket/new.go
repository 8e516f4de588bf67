// Package main provides the entry point for the docket CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/compose"
	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/editor"
	"github.com/gorewood/docket/internal/output"
)

// newFlags holds the flags of the new command.
type newFlags struct {
	force  bool
	noOpen bool
	date   string
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var flags newFlags
	cmd := &cobra.Command{
		Use:   "new <kind>",
		Short: "Create a dated legal document in the vault",
		Long: `Create a contract, legal memo, or client intake document in the vault.

The document is named <Prefix>-<YYYY-MM-DD>.md and filled from your firm
settings. If a document of the same kind already exists for the date, the
command fails with exit code 3 unless --force is given.

After creating, the document is opened with $DOCKET_EDITOR ($VISUAL,
$EDITOR) when one is set.

Kinds:
` + kindTable() + `
Examples:
  docket new contract                  # Create today's contract
  docket new memo --no-open            # Create without opening an editor
  docket new intake --date 2024-03-05  # Create for a fixed date
  docket new contract --force          # Overwrite today's contract
  docket new memo --json               # Output the result as JSON`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], flags)
		},
	}
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing document with the same name")
	cmd.Flags().BoolVar(&flags.noOpen, "no-open", false, "Do not open the created document in an editor")
	cmd.Flags().StringVar(&flags.date, "date", "", "Use this date (YYYY-MM-DD) instead of today")
	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, kindArg string, flags newFlags) error {
	printer := newPrinter(cmd)

	kind, err := document.ParseKind(kindArg)
	if err != nil {
		printer.Error(err)
		return err
	}

	clock, err := clockFor(flags.date)
	if err != nil {
		printer.Error(err)
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	creator, err := a.creator(cmd, flags.force)
	if err != nil {
		printer.Error(err)
		return err
	}

	composer := compose.New(a.store, creator).
		WithRenderer(a.renderer()).
		WithNotifier(printer).
		WithClock(clock)

	// Editors take over the terminal; never launch one under --json.
	if !flags.noOpen && !printer.IsJSON() {
		composer.WithOpener(editor.New(a.opts.Editor))
	}

	var warnings []string
	hist, err := a.openHistory()
	if err != nil {
		warnings = append(warnings, err.Error())
		printer.Warn("%s", err.Error())
	} else if hist != nil {
		defer func() { _ = hist.Close() }()
		composer.WithRecorder(hist)
	}

	result, err := composer.CreateTemplate(cmd.Context(), kind)
	if err != nil {
		// Human mode already showed the notification.
		if printer.IsJSON() {
			printer.Error(err)
		} else if output.IsConflict(err) {
			printer.Hint("Use 'docket new " + string(kind) + " --force' to overwrite it")
		}
		return err
	}
	warnings = append(warnings, result.Warnings...)

	if printer.IsJSON() {
		data := map[string]any{
			"status":   "created",
			"kind":     string(kind),
			"filename": result.Document.Filename,
			"location": result.Handle.Location,
		}
		if len(warnings) > 0 {
			data["warnings"] = warnings
		}
		return printer.Result(data)
	}
	return nil
}

// clockFor returns time.Now, or a fixed clock for a YYYY-MM-DD date in local time.
func clockFor(value string) (func() time.Time, error) {
	if value == "" {
		return time.Now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, output.NewUserError("invalid --date " + value + " (want YYYY-MM-DD)")
	}
	return func() time.Time { return day }, nil
}

// kindArgs lists the kind names for shell completion.
func kindArgs() []string {
	kinds := document.Kinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}


// kindTable lists each kind with its file name pattern and title.
func kindTable() string {
	var b strings.Builder
	for _, kind := range document.Kinds() {
		fmt.Fprintf(&b, "  %-10s %-24s %s\n", kind, kind.Prefix()+"-<date>.md", kind.Title())
	}
	return b.String()
}
