// Package main provides the entry point for the docket CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/docket/internal/compose"
	docketmcp "github.com/gorewood/docket/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run docket as a Model Context Protocol (MCP) server over stdio.

This exposes document creation and settings as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "docket": {
        "command": "docket",
        "args": ["serve", "--vault", "/path/to/vault"]
      }
    }
  }

Available tools: create_document, render_document, get_settings,
set_setting, list_templates, list_jurisdictions, list_history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			creator, err := a.creator(cmd, false)
			if err != nil {
				return err
			}

			// Stdout carries the protocol: no notifier, no editor.
			composer := compose.New(a.store, creator).WithRenderer(a.renderer())
			deps := docketmcp.Deps{
				Store:    a.store,
				Composer: composer,
				Library:  a.library,
			}

			hist, err := a.openHistory()
			if err != nil {
				return err
			}
			if hist != nil {
				defer func() { _ = hist.Close() }()
				composer.WithRecorder(hist)
				deps.History = hist
			}

			server := docketmcp.NewServer(buildVersion(), deps)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
