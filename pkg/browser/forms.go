package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/tools"
)

// FillFormTool fills several form fields in one call.
type FillFormTool struct {
	manager *Manager
}

// NewFillFormTool creates a new fill-form tool.
func NewFillFormTool(manager *Manager) *FillFormTool {
	return &FillFormTool{manager: manager}
}

// Name returns the tool name.
func (t *FillFormTool) Name() string {
	return "browser_fill_form"
}

// Description returns the tool description.
func (t *FillFormTool) Description() string {
	return "Fill multiple form fields in one call. 'fields' maps CSS selectors to values. When 'submit_selector' is given it is clicked after the fields are filled."
}

// Schema returns the tool's JSON schema.
func (t *FillFormTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"fields": map[string]interface{}{
				"type":        "object",
				"description": "Map of CSS selector to the value to fill",
				"additionalProperties": map[string]interface{}{
					"type": "string",
				},
			},
			"submit_selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector of a submit button to click after filling (optional)",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Per-field timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"fields"},
	)
}

// fillFormParams are the arguments for browser_fill_form.
type fillFormParams struct {
	Fields         map[string]string `json:"fields"`
	SubmitSelector string            `json:"submit_selector"`
	Timeout        *float64          `json:"timeout"`
}

// Execute fills the form and reports the per-field outcome.
func (t *FillFormTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input fillFormParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if len(input.Fields) == 0 {
		return "", fmt.Errorf("fields is required and must not be empty")
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	results, err := t.manager.FillForm(input.Fields, input.SubmitSelector, timeout)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Form fill results:\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&sb, "✗ %s: %s\n", r.Selector, r.Err)
		} else {
			fmt.Fprintf(&sb, "✓ %s\n", r.Selector)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
