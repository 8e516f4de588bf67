package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListHistoryInput is the input for the list_history tool.
type ListHistoryInput struct {
	Last int `json:"last,omitempty" jsonschema:"number of recent documents to return (default 10)"`
}

// ListHistoryOutput is the output for the list_history tool.
type ListHistoryOutput struct {
	Count     int             `json:"count"     jsonschema:"number of records returned"`
	Documents []HistoryRecord `json:"documents" jsonschema:"created documents, newest first"`
}

func handleListHistory(lister HistoryLister) mcp.ToolHandlerFor[ListHistoryInput, ListHistoryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListHistoryInput) (*mcp.CallToolResult, ListHistoryOutput, error) {
		last := input.Last
		if last <= 0 {
			last = 10
		}

		records, err := lister.List(ctx, last)
		if err != nil {
			return nil, ListHistoryOutput{}, fmt.Errorf("listing history: %w", err)
		}

		docs := toHistoryRecords(records)
		return nil, ListHistoryOutput{Count: len(docs), Documents: docs}, nil
	}
}
