package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/nids/internal/label"
	"github.com/amterp/nids/internal/model"
)

// NamedIDOutput wraps a single binding for JSON output.
type NamedIDOutput struct {
	NamedID model.NamedID `json:"named_id"`
}

// ListOutput wraps a list of bindings for JSON output.
type ListOutput struct {
	NamedIDs []model.NamedID `json:"named_ids"`
}

// NewListOutput creates a ListOutput.
// Always returns an empty array (not null) when there are no bindings.
func NewListOutput(entries []model.NamedID) ListOutput {
	if entries == nil {
		entries = []model.NamedID{}
	}
	return ListOutput{NamedIDs: entries}
}

// ExportOutput wraps the export string for JSON output.
type ExportOutput struct {
	Data       string `json:"data"`
	IsEmpty    bool   `json:"is_empty"`
	ProjectID  string `json:"project_id,omitempty"`
	MaxAllowed int    `json:"max_allowed_id"`
}

// LabelOutput wraps a rendered label for JSON output.
type LabelOutput struct {
	Category model.Category `json:"category"`
	IDs      []int16        `json:"ids"`
	Label    label.Label    `json:"label"`
	Width    int            `json:"width"`
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// printJsonLine marshals the value as compact JSON on one line.
func printJsonLine(v any) error {
	output, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
