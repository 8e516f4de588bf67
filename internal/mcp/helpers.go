package mcp

import (
	"time"

	"github.com/gorewood/docket/internal/document"
	"github.com/gorewood/docket/internal/history"
	"github.com/gorewood/docket/internal/settings"
)

// TemplateSummary is a simplified template for output.
type TemplateSummary struct {
	Kind        string `json:"kind"                jsonschema:"document kind"`
	Name        string `json:"name"                jsonschema:"template name"`
	Description string `json:"description"         jsonschema:"what the template contains"`
	Source      string `json:"source"              jsonschema:"vault, global, or built-in"`
	Path        string `json:"path,omitempty"      jsonschema:"override file path"`
	Overrides   string `json:"overrides,omitempty" jsonschema:"source this template shadows"`
}

// HistoryRecord is a simplified history record for output.
type HistoryRecord struct {
	ID           string `json:"id"           jsonschema:"record ID (ULID)"`
	Kind         string `json:"kind"         jsonschema:"document kind"`
	Filename     string `json:"filename"     jsonschema:"created file name"`
	Location     string `json:"location"     jsonschema:"where the document was created"`
	Jurisdiction string `json:"jurisdiction" jsonschema:"jurisdiction at creation time"`
	CreatedAt    string `json:"created_at"   jsonschema:"creation timestamp"`
}

// toTemplateSummaries converts template infos to TemplateSummary slice.
func toTemplateSummaries(infos []document.TemplateInfo) []TemplateSummary {
	result := make([]TemplateSummary, 0, len(infos))
	for _, info := range infos {
		result = append(result, TemplateSummary{
			Kind:        string(info.Kind),
			Name:        info.Name,
			Description: info.Description,
			Source:      info.Source,
			Path:        info.Path,
			Overrides:   info.Overrides,
		})
	}
	return result
}

// toHistoryRecords converts stored records to HistoryRecord slice.
func toHistoryRecords(records []history.Record) []HistoryRecord {
	result := make([]HistoryRecord, 0, len(records))
	for _, record := range records {
		result = append(result, HistoryRecord{
			ID:           record.ID,
			Kind:         record.Kind,
			Filename:     record.Filename,
			Location:     record.Location,
			Jurisdiction: record.Jurisdiction,
			CreatedAt:    record.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// toSettingsOutput pairs settings with the jurisdiction's display label.
func toSettingsOutput(s settings.Settings) SettingsOutput {
	return SettingsOutput{
		Settings:          s,
		JurisdictionLabel: settings.JurisdictionLabel(s.DefaultJurisdiction),
	}
}
