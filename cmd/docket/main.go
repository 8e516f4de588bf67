// Package main provides the entry point for the docket CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/config"
	"github.com/gorewood/docket/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ribbonHint is shown when docket runs without a subcommand.
const ribbonHint = "Use 'docket new <kind>' to create templates"

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against TTY detection of the command's output.
// An invalid flag value was already rejected by the root pre-run hook.
func useColor(cmd *cobra.Command) bool {
	mode, _ := output.ParseColorMode(persistentFlag(cmd, "color"))
	return mode.Enabled(cmd.OutOrStdout())
}

// newPrinter creates the printer every command reports through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the docket CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docket",
		Short: "Legal boilerplate for your notes vault",
		Long: `Docket - Legal boilerplate documents for a markdown notes vault.

Docket creates dated contract, legal memo, and client intake documents
filled from your firm settings:
  - Firm name, attorney name, bar number, and default jurisdiction
  - Today's date in your locale
  - One file per kind per day, never silently overwritten

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUserError("no command specified. Run 'docket --help' for usage")
				printer.Error(err)
				return err
			}
			printer := newPrinter(cmd)
			printer.Notify(output.Notification{Level: output.LevelInfo, Message: ribbonHint})
			printer.Println()
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for vault and storage settings.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.ParseColorMode(persistentFlag(cmd, "color")); err != nil {
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
				WithStderr(cmd.ErrOrStderr()).
				Error(err)
			return err
		}
		config.LoadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("vault", "", "Vault directory (default $DOCKET_VAULT or .)")
	cmd.PersistentFlags().String("settings", "", "Settings file (default <vault>/.docket/settings.yaml)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Document Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "config", Title: "Settings Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Document commands: new, render
	addGroupedCommand(cmd, newNewCmd(), "core")
	addGroupedCommand(cmd, newRenderCmd(), "core")

	// Settings commands: settings, jurisdictions, templates
	addGroupedCommand(cmd, newSettingsCmd(), "config")
	addGroupedCommand(cmd, newJurisdictionsCmd(), "config")
	addGroupedCommand(cmd, newTemplatesCmd(), "config")

	// Query commands: history
	addGroupedCommand(cmd, newHistoryCmd(), "query")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
