package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// GetTextTool reads text content from an element.
type GetTextTool struct {
	manager *Manager
}

// NewGetTextTool creates a new get-text tool.
func NewGetTextTool(manager *Manager) *GetTextTool {
	return &GetTextTool{manager: manager}
}

// Name returns the tool name.
func (t *GetTextTool) Name() string {
	return "browser_get_text"
}

// Description returns the tool description.
func (t *GetTextTool) Description() string {
	return "Get the text content of the element matching a CSS selector. When several elements match, their texts are joined with ' | '."
}

// Schema returns the tool's JSON schema.
func (t *GetTextTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector"},
	)
}

// getTextParams are the arguments for browser_get_text.
type getTextParams struct {
	Selector string   `json:"selector"`
	Timeout  *float64 `json:"timeout"`
}

// Execute reads the element's text.
func (t *GetTextTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input getTextParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	text, err := t.manager.GetText(input.Selector, timeout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "(element has no text content)", nil
	}
	return text, nil
}

// GetAttributeTool reads an attribute value from an element.
type GetAttributeTool struct {
	manager *Manager
}

// NewGetAttributeTool creates a new get-attribute tool.
func NewGetAttributeTool(manager *Manager) *GetAttributeTool {
	return &GetAttributeTool{manager: manager}
}

// Name returns the tool name.
func (t *GetAttributeTool) Name() string {
	return "browser_get_attribute"
}

// Description returns the tool description.
func (t *GetAttributeTool) Description() string {
	return "Get an attribute value from the element matching a CSS selector."
}

// Schema returns the tool's JSON schema.
func (t *GetAttributeTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element",
			},
			"attribute": map[string]interface{}{
				"type":        "string",
				"description": "Attribute name to read (e.g. 'href', 'value', 'class')",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector", "attribute"},
	)
}

// getAttributeParams are the arguments for browser_get_attribute.
type getAttributeParams struct {
	Selector  string   `json:"selector"`
	Attribute string   `json:"attribute"`
	Timeout   *float64 `json:"timeout"`
}

// Execute reads the attribute.
func (t *GetAttributeTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input getAttributeParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if input.Attribute == "" {
		return "", fmt.Errorf("attribute is required")
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	value, err := t.manager.GetAttribute(input.Selector, input.Attribute, timeout)
	if err != nil {
		return "", fmt.Errorf("failed to get attribute %s from element %s: %w", input.Attribute, input.Selector, err)
	}
	if value == "" {
		return fmt.Sprintf("(attribute %s is empty or not set)", input.Attribute), nil
	}
	return value, nil
}

// GetURLTool reports the current tab's URL.
type GetURLTool struct {
	manager *Manager
}

// NewGetURLTool creates a new get-url tool.
func NewGetURLTool(manager *Manager) *GetURLTool {
	return &GetURLTool{manager: manager}
}

// Name returns the tool name.
func (t *GetURLTool) Name() string {
	return "browser_get_url"
}

// Description returns the tool description.
func (t *GetURLTool) Description() string {
	return "Get the URL of the current page."
}

// Schema returns the tool's JSON schema.
func (t *GetURLTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute reads the URL.
func (t *GetURLTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	url, err := t.manager.URL()
	if err != nil {
		return "", err
	}
	return url, nil
}

// GetTitleTool reports the current tab's document title.
type GetTitleTool struct {
	manager *Manager
}

// NewGetTitleTool creates a new get-title tool.
func NewGetTitleTool(manager *Manager) *GetTitleTool {
	return &GetTitleTool{manager: manager}
}

// Name returns the tool name.
func (t *GetTitleTool) Name() string {
	return "browser_get_title"
}

// Description returns the tool description.
func (t *GetTitleTool) Description() string {
	return "Get the title of the current page."
}

// Schema returns the tool's JSON schema.
func (t *GetTitleTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute reads the title.
func (t *GetTitleTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	title, err := t.manager.Title()
	if err != nil {
		return "", err
	}
	if title == "" {
		return "(page has no title)", nil
	}
	return title, nil
}
