// Package main provides the entry point for the docket CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/form"
	"github.com/gorewood/docket/internal/output"
	"github.com/gorewood/docket/internal/settings"
)

// newSettingsCmd creates the settings command and its subcommands.
func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change firm settings",
		Long: `Show or change the firm settings used to fill documents.

Settings are stored per vault in .docket/settings.yaml. A data.json written
by the notes plugin can be used directly with --settings.

Fields:
  jurisdiction    Default jurisdiction (US-Federal, US-California, ...)
  firm-name       Your law firm name
  attorney-name   Your full name as an attorney
  bar-number      Your bar admission number

Examples:
  docket settings                              # Show current settings
  docket settings set firm-name "Doe LLP"      # Change one field
  docket settings edit                         # Interactive form
  docket settings reset                        # Restore defaults
  docket settings --json                       # Settings as JSON`,
		Args: cobra.NoArgs,
		RunE: runSettingsShow,
	}

	cmd.AddCommand(newSettingsSetCmd())
	cmd.AddCommand(newSettingsEditCmd())
	cmd.AddCommand(newSettingsResetCmd())
	return cmd
}

// runSettingsShow prints the current settings.
func runSettingsShow(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	printSettings(printer, a.store.Settings(), a.opts.ResolvedSettingsPath())
	return nil
}

// newSettingsSetCmd creates the settings set subcommand.
func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change one setting",
		Long: `Change one setting and save it. The value is stored as given.

Examples:
  docket settings set jurisdiction UK
  docket settings set bar-number "SBN 123456"
  docket settings set firm-name ""             # Empty values are allowed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsSet(cmd, args[0], args[1])
		},
	}
}

// runSettingsSet executes the settings set subcommand.
func runSettingsSet(cmd *cobra.Command, fieldArg, value string) error {
	printer := newPrinter(cmd)

	field, err := settings.ParseField(fieldArg)
	if err != nil {
		printer.Error(err)
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	updated, err := a.store.Update(cmd.Context(), field, value)
	if err != nil {
		sysErr := output.NewSystemError(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	if field == settings.FieldJurisdiction && !settings.IsKnownJurisdiction(value) {
		printer.Warn("%q is not one of the listed jurisdictions; it will be used as typed", value)
	}

	if printer.IsJSON() {
		return printer.Result(map[string]any{
			"status":   "updated",
			"field":    string(field),
			"value":    value,
			"settings": updated,
		})
	}
	printer.Notify(output.Notification{Level: output.LevelInfo, Message: "Updated " + field.Label() + ": " + value})
	return nil
}

// newSettingsEditCmd creates the settings edit subcommand.
func newSettingsEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings with an interactive form",
		Long: `Edit settings with an interactive form.

Each answer is saved as soon as it changes. Press Ctrl+C to stop; answers
given so far are kept.`,
		Args: cobra.NoArgs,
		RunE: runSettingsEdit,
	}
}

// runSettingsEdit executes the settings edit subcommand.
func runSettingsEdit(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	if printer.IsJSON() {
		err := output.NewUserError("settings edit is interactive; use 'docket settings set' with --json")
		printer.Error(err)
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	updated, changed, err := form.Edit(cmd.Context(), a.store, form.NewSurveyPrompter())
	if errors.Is(err, form.ErrAborted) {
		printer.Warn("form aborted; %d change(s) saved", len(changed))
		return nil
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(changed) == 0 {
		printer.Print("No changes\n")
		return nil
	}
	printer.Println()
	printSettings(printer, updated, a.opts.ResolvedSettingsPath())
	return nil
}

// newSettingsResetCmd creates the settings reset subcommand.
func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			a, err := loadApp(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}

			defaults, err := a.store.Reset(cmd.Context())
			if err != nil {
				sysErr := output.NewSystemError(err.Error(), err)
				printer.Error(sysErr)
				return sysErr
			}

			if printer.IsJSON() {
				return printer.Result(map[string]any{"status": "reset", "settings": defaults})
			}
			printer.Notify(output.Notification{Level: output.LevelInfo, Message: "Settings restored to defaults"})
			return nil
		},
	}
}

// printSettings outputs settings in the printer's mode.
func printSettings(printer *output.Printer, s settings.Settings, path string) {
	if printer.IsJSON() {
		_ = printer.Result(map[string]any{
			"settings": s,
			"path":     path,
		})
		return
	}

	printer.Details("Settings", []output.Detail{
		{Label: settings.FieldJurisdiction.Label(), Value: jurisdictionDisplay(s.DefaultJurisdiction)},
		{Label: settings.FieldFirmName.Label(), Value: s.FirmName},
		{Label: settings.FieldAttorneyName.Label(), Value: s.AttorneyName},
		{Label: settings.FieldBarNumber.Label(), Value: s.BarNumber},
		{Label: "File", Value: path},
	})
}

// jurisdictionDisplay shows "Label (Code)" for listed codes and the raw value otherwise.
func jurisdictionDisplay(code string) string {
	if !settings.IsKnownJurisdiction(code) {
		return code
	}
	return settings.JurisdictionLabel(code) + " (" + code + ")"
}
