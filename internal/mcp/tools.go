package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/docket/internal/compose"
	"github.com/gorewood/docket/internal/document"
)

// --- Create tool ---

// CreateInput is the input for the create_document tool.
type CreateInput struct {
	Kind string `json:"kind" jsonschema:"document kind: contract, memo, or intake"`
}

// CreateOutput is the output for the create_document tool.
type CreateOutput struct {
	Kind     string   `json:"kind"               jsonschema:"document kind"`
	Filename string   `json:"filename"           jsonschema:"created file name"`
	Location string   `json:"location"           jsonschema:"absolute path or s3:// URI of the created document"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"non-fatal problems after the document was created"`
}

func handleCreateDocument(composer *compose.Composer) mcp.ToolHandlerFor[CreateInput, CreateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
		kind, err := document.ParseKind(input.Kind)
		if err != nil {
			return nil, CreateOutput{}, err
		}

		result, err := composer.CreateTemplate(ctx, kind)
		if err != nil {
			return nil, CreateOutput{}, err
		}

		return nil, CreateOutput{
			Kind:     string(kind),
			Filename: result.Document.Filename,
			Location: result.Handle.Location,
			Warnings: result.Warnings,
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render_document tool.
type RenderInput struct {
	Kind string `json:"kind" jsonschema:"document kind: contract, memo, or intake"`
}

// RenderOutput is the output for the render_document tool.
type RenderOutput struct {
	Kind     string `json:"kind"     jsonschema:"document kind"`
	Filename string `json:"filename" jsonschema:"file name the document would be created as"`
	Content  string `json:"content"  jsonschema:"rendered markdown"`
}

func handleRenderDocument(composer *compose.Composer) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		kind, err := document.ParseKind(input.Kind)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		doc, err := composer.Preview(kind)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		return nil, RenderOutput{
			Kind:     string(doc.Kind),
			Filename: doc.Filename,
			Content:  doc.Content,
		}, nil
	}
}

// --- Templates tool ---

// ListTemplatesInput is the input for the list_templates tool (no parameters needed).
type ListTemplatesInput struct{}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Templates []TemplateSummary `json:"templates" jsonschema:"one entry per document kind"`
}

func handleListTemplates(library *document.Library) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		return nil, ListTemplatesOutput{Templates: toTemplateSummaries(library.List())}, nil
	}
}
