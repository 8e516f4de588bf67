// Package mcp provides a Model Context Protocol server for docket.
// It exposes document generation and settings as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/docket/internal/compose"
	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/history"
	"github.com/gorewood/docket/internal/settings"
)

// HistoryLister lists recorded generations, newest first.
type HistoryLister interface {
	List(ctx context.Context, limit int) ([]history.Record, error)
}

// Deps are the collaborators the tools operate on.
// History is optional; the list_history tool is only registered when set.
type Deps struct {
	Store    *settings.Store
	Composer *compose.Composer
	Library  *document.Library
	History  HistoryLister
}

// NewServer creates an MCP server with all docket tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docket",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all docket tools to the server.
func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_document",
		Description: "Create a legal boilerplate document (contract, memo, or intake) in the vault, filled from the saved firm settings. Fails if a document with the same name already exists today.",
		Annotations: writeAnnotations(),
	}, handleCreateDocument(deps.Composer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_document",
		Description: "Render a document (contract, memo, or intake) without creating it. Returns the suggested file name and markdown content.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderDocument(deps.Composer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_settings",
		Description: "Show the firm settings used to fill documents: jurisdiction, firm name, attorney name, and bar number.",
		Annotations: readOnlyAnnotations(),
	}, handleGetSettings(deps.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_setting",
		Description: "Change one firm setting and save it. Fields: firm-name, attorney-name, bar-number, jurisdiction. Values are stored as given.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(true),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(false),
		},
	}, handleSetSetting(deps.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the document templates, where each is loaded from (vault, global, or built-in), and which built-ins are overridden.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(deps.Library))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_jurisdictions",
		Description: "List the jurisdiction codes offered by the settings form.",
		Annotations: readOnlyAnnotations(),
	}, handleListJurisdictions())

	if deps.History != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "list_history",
			Description: "List previously created documents, newest first.",
			Annotations: readOnlyAnnotations(),
		}, handleListHistory(deps.History))
	}
}
