package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// ClickTool clicks an element in the current tab.
type ClickTool struct {
	manager *Manager
}

// NewClickTool creates a new click tool.
func NewClickTool(manager *Manager) *ClickTool {
	return &ClickTool{manager: manager}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "browser_click"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click an element using a CSS selector. Waits for the element to become visible first. Supports single and double clicks and different mouse buttons."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to click (e.g. 'button.submit', '#login-btn')",
			},
			"button": map[string]interface{}{
				"type":        "string",
				"description": "Mouse button to use: 'left' (default), 'right', or 'middle'",
			},
			"click_count": map[string]interface{}{
				"type":        "integer",
				"description": "Number of clicks: 1 (default) for single click, 2 for double click",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector"},
	)
}

// clickParams are the arguments for browser_click.
type clickParams struct {
	Selector   string   `json:"selector"`
	Button     string   `json:"button"`
	ClickCount *int     `json:"click_count"`
	Timeout    *float64 `json:"timeout"`
}

// Execute clicks the element.
func (t *ClickTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input clickParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if input.Button != "" && !validMouseButtons[input.Button] {
		return "", fmt.Errorf("invalid button: %s (must be 'left', 'right', or 'middle')", input.Button)
	}

	clickCount := 1
	if input.ClickCount != nil {
		if *input.ClickCount < 1 || *input.ClickCount > 3 {
			return "", fmt.Errorf("click_count must be between 1 and 3")
		}
		clickCount = *input.ClickCount
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	if err := t.manager.Click(input.Selector, input.Button, clickCount, timeout); err != nil {
		return "", fmt.Errorf("failed to click element %s: %w", input.Selector, err)
	}
	return fmt.Sprintf("Successfully clicked element: %s", input.Selector), nil
}
