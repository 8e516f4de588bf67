// Package main provides the entry point for the docket CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/compose"
	"github.com/gorewood/docket/internal/document"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var dateFlag string
	cmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Print a document without creating it",
		Long: `Render a document to stdout without touching the vault.

Uses the same settings, templates, and locale as 'docket new'.

Examples:
  docket render contract                   # Preview today's contract
  docket render memo --date 2024-03-05     # Preview for a fixed date
  docket render intake > intake.md         # Write a copy anywhere
  docket render contract --json            # Filename and content as JSON`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], dateFlag)
		},
	}
	cmd.Flags().StringVar(&dateFlag, "date", "", "Use this date (YYYY-MM-DD) instead of today")
	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, kindArg, dateFlag string) error {
	printer := newPrinter(cmd)

	kind, err := document.ParseKind(kindArg)
	if err != nil {
		printer.Error(err)
		return err
	}

	clock, err := clockFor(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	// Preview never reaches the creator.
	composer := compose.New(a.store, nil).WithRenderer(a.renderer()).WithClock(clock)
	doc, err := composer.Preview(kind)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Result(map[string]any{
			"kind":     string(doc.Kind),
			"filename": doc.Filename,
			"content":  doc.Content,
		})
	}
	printer.Print("%s", doc.Content)
	return nil
}
