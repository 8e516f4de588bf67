// Package main provides the entry point for the docket CLI.
package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/output"
)

// newHistoryCmd creates the history command.
func newHistoryCmd() *cobra.Command {
	var lastFlag int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List created documents",
		Long: `List documents created with 'docket new', newest first.

History is kept in $DOCKET_HISTORY_DB (default <config>/history.db).
Set DOCKET_HISTORY_DB=off to disable it.

Examples:
  docket history            # Show the last 10 documents
  docket history --last 50  # Show the last 50
  docket history --json     # Records as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, lastFlag)
		},
	}
	cmd.Flags().IntVarP(&lastFlag, "last", "n", 10, "Number of documents to show (0 for all)")
	return cmd
}

// runHistory executes the history command.
func runHistory(cmd *cobra.Command, last int) error {
	printer := newPrinter(cmd)

	if last < 0 {
		err := output.NewUserError("--last must be zero or positive")
		printer.Error(err)
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	hist, err := a.openHistory()
	if err != nil {
		printer.Error(err)
		return err
	}
	if hist == nil {
		err := output.NewUserError("history is disabled (DOCKET_HISTORY_DB=off)")
		printer.Error(err)
		return err
	}
	defer func() { _ = hist.Close() }()

	records, err := hist.List(cmd.Context(), last)
	if err != nil {
		sysErr := output.NewSystemError(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.Result(map[string]any{
			"count":     len(records),
			"documents": records,
		})
	}

	if len(records) == 0 {
		printer.Println("No documents created yet.")
		printer.Hint(ribbonHint)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{humanize.Time(r.CreatedAt), r.Kind, r.Filename, r.Location})
	}
	printer.Table([]string{"Created", "Kind", "File", "Location"}, rows)
	return nil
}
