// Package main provides the entry point for the docket CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/settings"
)

// newJurisdictionsCmd creates the jurisdictions command.
func newJurisdictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jurisdictions",
		Short: "List selectable jurisdictions",
		Long: `List the jurisdiction codes offered by the settings form.

The current default is marked with *. Any other value can still be set with
'docket settings set jurisdiction <value>'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			a, err := loadApp(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}
			current := a.store.Settings().DefaultJurisdiction

			if printer.IsJSON() {
				return printer.Result(map[string]any{
					"current":       current,
					"jurisdictions": settings.Jurisdictions(),
				})
			}

			rows := make([][]string, 0, len(settings.Jurisdictions()))
			for _, j := range settings.Jurisdictions() {
				mark := ""
				if j.Code == current {
					mark = "*"
				}
				rows = append(rows, []string{mark, j.Code, j.Label})
			}
			printer.Table([]string{"", "Code", "Label"}, rows)

			if !settings.IsKnownJurisdiction(current) {
				printer.Warn("current default %q is not listed", current)
			}
			return nil
		},
	}
}

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List document templates and their sources",
		Long: `List the template used for each kind and where it comes from.

Templates resolve in order:
  1. <vault>/.docket/templates/<kind>.md
  2. <config>/templates/<kind>.md
  3. Built-in

Override files are markdown with optional YAML frontmatter (name,
description). Placeholders: {{firm_name}}, {{attorney_name}},
{{bar_number}}, {{jurisdiction}}, {{date}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			a, err := loadApp(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}
			infos := a.library.List()

			if printer.IsJSON() {
				return printer.Result(map[string]any{"templates": infos})
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				source := info.Source
				if info.Overrides != "" {
					source += " (overrides " + info.Overrides + ")"
				}
				rows = append(rows, []string{string(info.Kind), info.Description, source})
			}
			printer.Table([]string{"Kind", "Description", "Source"}, rows)
			return nil
		},
	}
}
