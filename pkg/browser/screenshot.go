package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// ScreenshotTool captures the current page as a PNG.
type ScreenshotTool struct {
	manager *Manager
}

// NewScreenshotTool creates a new screenshot tool.
func NewScreenshotTool(manager *Manager) *ScreenshotTool {
	return &ScreenshotTool{manager: manager}
}

// Name returns the tool name.
func (t *ScreenshotTool) Name() string {
	return "browser_screenshot"
}

// Description returns the tool description.
func (t *ScreenshotTool) Description() string {
	return "Take a screenshot of the current page. With 'path' the image is saved to disk; without it a truncated base64 preview is returned."
}

// Schema returns the tool's JSON schema.
func (t *ScreenshotTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "File path to save the screenshot to (optional)",
			},
			"full_page": map[string]interface{}{
				"type":        "boolean",
				"description": "Capture the full scrollable page instead of the viewport. Default: false",
			},
		},
		nil,
	)
}

// screenshotParams are the arguments for browser_screenshot.
type screenshotParams struct {
	Path     string `json:"path"`
	FullPage bool   `json:"full_page"`
}

// Execute captures the screenshot.
func (t *ScreenshotTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input screenshotParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	result, err := t.manager.Screenshot(input.Path, input.FullPage)
	if err != nil {
		return "", fmt.Errorf("failed to take screenshot: %w", err)
	}
	return result, nil
}
