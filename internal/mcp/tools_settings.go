package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/docket/internal/settings"
)

// SettingsOutput is the output for the get_settings and set_setting tools.
type SettingsOutput struct {
	Settings          settings.Settings `json:"settings"                     jsonschema:"current firm settings"`
	JurisdictionLabel string            `json:"jurisdiction_label,omitempty" jsonschema:"display name of the jurisdiction; custom codes are shown as stored"`
}

// GetSettingsInput is the input for the get_settings tool (no parameters needed).
type GetSettingsInput struct{}

func handleGetSettings(store *settings.Store) mcp.ToolHandlerFor[GetSettingsInput, SettingsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ GetSettingsInput) (*mcp.CallToolResult, SettingsOutput, error) {
		return nil, toSettingsOutput(store.Settings()), nil
	}
}

// SetSettingInput is the input for the set_setting tool.
type SetSettingInput struct {
	Field string `json:"field" jsonschema:"field to change: firm-name, attorney-name, bar-number, or jurisdiction"`
	Value string `json:"value" jsonschema:"new value, stored verbatim"`
}

func handleSetSetting(store *settings.Store) mcp.ToolHandlerFor[SetSettingInput, SettingsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetSettingInput) (*mcp.CallToolResult, SettingsOutput, error) {
		field, err := settings.ParseField(input.Field)
		if err != nil {
			return nil, SettingsOutput{}, err
		}

		updated, err := store.Update(ctx, field, input.Value)
		if err != nil {
			return nil, SettingsOutput{}, fmt.Errorf("saving %s: %w", field, err)
		}
		return nil, toSettingsOutput(updated), nil
	}
}

// --- Jurisdictions tool ---

// ListJurisdictionsInput is the input for the list_jurisdictions tool (no parameters needed).
type ListJurisdictionsInput struct{}

// ListJurisdictionsOutput is the output for the list_jurisdictions tool.
type ListJurisdictionsOutput struct {
	Jurisdictions []settings.Jurisdiction `json:"jurisdictions" jsonschema:"selectable jurisdiction codes and labels"`
}

func handleListJurisdictions() mcp.ToolHandlerFor[ListJurisdictionsInput, ListJurisdictionsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListJurisdictionsInput) (*mcp.CallToolResult, ListJurisdictionsOutput, error) {
		return nil, ListJurisdictionsOutput{Jurisdictions: settings.Jurisdictions()}, nil
	}
}
