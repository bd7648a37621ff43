package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// TypeTextTool types text into an input element, replacing its content.
type TypeTextTool struct {
	manager *Manager
}

// NewTypeTextTool creates a new type-text tool.
func NewTypeTextTool(manager *Manager) *TypeTextTool {
	return &TypeTextTool{manager: manager}
}

// Name returns the tool name.
func (t *TypeTextTool) Name() string {
	return "browser_type_text"
}

// Description returns the tool description.
func (t *TypeTextTool) Description() string {
	return "Type text into an input element identified by a CSS selector. Existing content is cleared first."
}

// Schema returns the tool's JSON schema.
func (t *TypeTextTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to type into",
			},
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to type",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector", "text"},
	)
}

// typeTextParams are the arguments for browser_type_text.
type typeTextParams struct {
	Selector string   `json:"selector"`
	Text     *string  `json:"text"`
	Timeout  *float64 `json:"timeout"`
}

// Execute fills the element with the given text.
func (t *TypeTextTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input typeTextParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	// An explicit empty string is a valid way to clear a field; an absent
	// text parameter is not.
	if input.Text == nil {
		return "", fmt.Errorf("text is required")
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	if err := t.manager.TypeText(input.Selector, *input.Text, timeout); err != nil {
		return "", fmt.Errorf("failed to type text into element %s: %w", input.Selector, err)
	}
	return fmt.Sprintf("Successfully typed text into element: %s", input.Selector), nil
}

// SelectOptionTool selects an option from a dropdown.
type SelectOptionTool struct {
	manager *Manager
}

// NewSelectOptionTool creates a new select-option tool.
func NewSelectOptionTool(manager *Manager) *SelectOptionTool {
	return &SelectOptionTool{manager: manager}
}

// Name returns the tool name.
func (t *SelectOptionTool) Name() string {
	return "browser_select_option"
}

// Description returns the tool description.
func (t *SelectOptionTool) Description() string {
	return "Select an option by value in a <select> element identified by a CSS selector."
}

// Schema returns the tool's JSON schema.
func (t *SelectOptionTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the <select> element",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "Option value to select",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector", "value"},
	)
}

// selectOptionParams are the arguments for browser_select_option.
type selectOptionParams struct {
	Selector string   `json:"selector"`
	Value    string   `json:"value"`
	Timeout  *float64 `json:"timeout"`
}

// Execute selects the option.
func (t *SelectOptionTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input selectOptionParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if input.Value == "" {
		return "", fmt.Errorf("value is required")
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	if err := t.manager.SelectOption(input.Selector, input.Value, timeout); err != nil {
		return "", fmt.Errorf("failed to select option in element %s: %w", input.Selector, err)
	}
	return fmt.Sprintf("Successfully selected option '%s' in element: %s", input.Value, input.Selector), nil
}

// CheckCheckboxTool checks a checkbox.
type CheckCheckboxTool struct {
	manager *Manager
}

// NewCheckCheckboxTool creates a new check-checkbox tool.
func NewCheckCheckboxTool(manager *Manager) *CheckCheckboxTool {
	return &CheckCheckboxTool{manager: manager}
}

// Name returns the tool name.
func (t *CheckCheckboxTool) Name() string {
	return "browser_check_checkbox"
}

// Description returns the tool description.
func (t *CheckCheckboxTool) Description() string {
	return "Check a checkbox identified by a CSS selector."
}

// Schema returns the tool's JSON schema.
func (t *CheckCheckboxTool) Schema() map[string]interface{} {
	return checkboxSchema()
}

// Execute checks the checkbox.
func (t *CheckCheckboxTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	selector, timeout, err := decodeCheckboxParams(arguments)
	if err != nil {
		return "", err
	}
	if err := t.manager.SetChecked(selector, true, timeout); err != nil {
		return "", fmt.Errorf("failed to check checkbox %s: %w", selector, err)
	}
	return fmt.Sprintf("Successfully checked checkbox: %s", selector), nil
}

// UncheckCheckboxTool unchecks a checkbox.
type UncheckCheckboxTool struct {
	manager *Manager
}

// NewUncheckCheckboxTool creates a new uncheck-checkbox tool.
func NewUncheckCheckboxTool(manager *Manager) *UncheckCheckboxTool {
	return &UncheckCheckboxTool{manager: manager}
}

// Name returns the tool name.
func (t *UncheckCheckboxTool) Name() string {
	return "browser_uncheck_checkbox"
}

// Description returns the tool description.
func (t *UncheckCheckboxTool) Description() string {
	return "Uncheck a checkbox identified by a CSS selector."
}

// Schema returns the tool's JSON schema.
func (t *UncheckCheckboxTool) Schema() map[string]interface{} {
	return checkboxSchema()
}

// Execute unchecks the checkbox.
func (t *UncheckCheckboxTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	selector, timeout, err := decodeCheckboxParams(arguments)
	if err != nil {
		return "", err
	}
	if err := t.manager.SetChecked(selector, false, timeout); err != nil {
		return "", fmt.Errorf("failed to uncheck checkbox %s: %w", selector, err)
	}
	return fmt.Sprintf("Successfully unchecked checkbox: %s", selector), nil
}

// checkboxSchema is shared by the check and uncheck tools.
func checkboxSchema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the checkbox",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector"},
	)
}

// decodeCheckboxParams parses and validates the shared checkbox arguments.
func decodeCheckboxParams(arguments json.RawMessage) (string, float64, error) {
	var input struct {
		Selector string   `json:"selector"`
		Timeout  *float64 `json:"timeout"`
	}
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", 0, fmt.Errorf("invalid parameters: %w", err)
	}
	if input.Selector == "" {
		return "", 0, fmt.Errorf("selector is required")
	}
	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", 0, err
	}
	return input.Selector, timeout, nil
}

// HoverTool hovers over an element.
type HoverTool struct {
	manager *Manager
}

// NewHoverTool creates a new hover tool.
func NewHoverTool(manager *Manager) *HoverTool {
	return &HoverTool{manager: manager}
}

// Name returns the tool name.
func (t *HoverTool) Name() string {
	return "browser_hover"
}

// Description returns the tool description.
func (t *HoverTool) Description() string {
	return "Hover the mouse over an element identified by a CSS selector. Useful for revealing menus and tooltips."
}

// Schema returns the tool's JSON schema.
func (t *HoverTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to hover over",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector"},
	)
}

// hoverParams are the arguments for browser_hover.
type hoverParams struct {
	Selector string   `json:"selector"`
	Timeout  *float64 `json:"timeout"`
}

// Execute hovers over the element.
func (t *HoverTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input hoverParams
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

	if err := t.manager.Hover(input.Selector, timeout); err != nil {
		return "", fmt.Errorf("failed to hover over element %s: %w", input.Selector, err)
	}
	return fmt.Sprintf("Successfully hovered over element: %s", input.Selector), nil
}

// ScrollToTool scrolls an element into view.
type ScrollToTool struct {
	manager *Manager
}

// NewScrollToTool creates a new scroll-to tool.
func NewScrollToTool(manager *Manager) *ScrollToTool {
	return &ScrollToTool{manager: manager}
}

// Name returns the tool name.
func (t *ScrollToTool) Name() string {
	return "browser_scroll_to"
}

// Description returns the tool description.
func (t *ScrollToTool) Description() string {
	return "Scroll the page until the element identified by a CSS selector is in view."
}

// Schema returns the tool's JSON schema.
func (t *ScrollToTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to scroll to",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Timeout in milliseconds. Default: 5000",
			},
		},
		[]string{"selector"},
	)
}

// scrollToParams are the arguments for browser_scroll_to.
type scrollToParams struct {
	Selector string   `json:"selector"`
	Timeout  *float64 `json:"timeout"`
}

// Execute scrolls the element into view.
func (t *ScrollToTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input scrollToParams
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

	if err := t.manager.ScrollTo(input.Selector, timeout); err != nil {
		return "", fmt.Errorf("failed to scroll to element %s: %w", input.Selector, err)
	}
	return fmt.Sprintf("Successfully scrolled to element: %s", input.Selector), nil
}
