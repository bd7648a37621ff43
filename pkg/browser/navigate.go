package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// NavigateTool navigates the current tab to a URL.
type NavigateTool struct {
	manager *Manager
}

// NewNavigateTool creates a new navigate tool.
func NewNavigateTool(manager *Manager) *NavigateTool {
	return &NavigateTool{manager: manager}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "browser_navigate"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate the current tab to a URL. The browser starts automatically on the first call."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "The URL to navigate to (must include protocol, e.g. https://example.com)",
			},
			"wait_until": map[string]interface{}{
				"type":        "string",
				"description": "When to consider navigation complete: 'load', 'domcontentloaded' (default), or 'networkidle'",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Navigation timeout in milliseconds. Default: 30000",
			},
		},
		[]string{"url"},
	)
}

// navigateParams are the arguments for browser_navigate.
type navigateParams struct {
	URL       string   `json:"url"`
	WaitUntil string   `json:"wait_until"`
	Timeout   *float64 `json:"timeout"`
}

// Execute navigates to the URL and reports the resulting HTTP status when
// it indicates a problem.
func (t *NavigateTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input navigateParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.URL == "" {
		return "", fmt.Errorf("url is required")
	}

	waitUntil := input.WaitUntil
	if waitUntil == "" {
		waitUntil = "domcontentloaded"
	}
	if !validLoadStates[waitUntil] {
		return "", fmt.Errorf("invalid wait_until value: %s (must be 'load', 'domcontentloaded', or 'networkidle')", waitUntil)
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	status, err := t.manager.Navigate(input.URL, waitUntil, timeout)
	if err != nil {
		return "", fmt.Errorf("failed to navigate to %s: %w", input.URL, err)
	}

	if status >= 400 {
		return fmt.Sprintf("Navigation to %s completed with status %d", input.URL, status), nil
	}
	return fmt.Sprintf("Successfully navigated to: %s", input.URL), nil
}
