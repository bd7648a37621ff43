package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// WaitForSelectorTool waits for an element to reach a state.
type WaitForSelectorTool struct {
	manager *Manager
}

// NewWaitForSelectorTool creates a new wait-for-selector tool.
func NewWaitForSelectorTool(manager *Manager) *WaitForSelectorTool {
	return &WaitForSelectorTool{manager: manager}
}

// Name returns the tool name.
func (t *WaitForSelectorTool) Name() string {
	return "browser_wait_for_selector"
}

// Description returns the tool description.
func (t *WaitForSelectorTool) Description() string {
	return "Wait for the element matching a CSS selector to reach a state. Useful for dynamic content, loading indicators, or elements appearing and disappearing."
}

// Schema returns the tool's JSON schema.
func (t *WaitForSelectorTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector to wait for",
			},
			"state": map[string]interface{}{
				"type":        "string",
				"description": "State to wait for: 'visible' (default), 'hidden', 'attached', or 'detached'",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Maximum wait time in milliseconds. Default: 30000",
			},
		},
		[]string{"selector"},
	)
}

// waitForSelectorParams are the arguments for browser_wait_for_selector.
type waitForSelectorParams struct {
	Selector string   `json:"selector"`
	State    string   `json:"state"`
	Timeout  *float64 `json:"timeout"`
}

// Execute waits for the element.
func (t *WaitForSelectorTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input waitForSelectorParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", fmt.Errorf("selector is required")
	}

	state := input.State
	if state == "" {
		state = "visible"
	}
	if !validWaitStates[state] {
		return "", fmt.Errorf("invalid state: %s (must be 'visible', 'hidden', 'attached', or 'detached')", state)
	}

	timeout, err := validateTimeout(input.Timeout)
	if err != nil {
		return "", err
	}

	if err := t.manager.WaitForSelector(input.Selector, state, timeout); err != nil {
		return "", fmt.Errorf("failed waiting for element %s to be %s: %w", input.Selector, state, err)
	}
	return fmt.Sprintf("Element %s is now %s", input.Selector, state), nil
}

// WaitForLoadStateTool waits for the page to reach a load state.
type WaitForLoadStateTool struct {
	manager *Manager
}

// NewWaitForLoadStateTool creates a new wait-for-load-state tool.
func NewWaitForLoadStateTool(manager *Manager) *WaitForLoadStateTool {
	return &WaitForLoadStateTool{manager: manager}
}

// Name returns the tool name.
func (t *WaitForLoadStateTool) Name() string {
	return "browser_wait_for_load_state"
}

// Description returns the tool description.
func (t *WaitForLoadStateTool) Description() string {
	return "Wait for the current page to reach a load state: 'load', 'domcontentloaded', or 'networkidle'."
}

// Schema returns the tool's JSON schema.
func (t *WaitForLoadStateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"state": map[string]interface{}{
				"type":        "string",
				"description": "Load state to wait for: 'load' (default), 'domcontentloaded', or 'networkidle'",
			},
		},
		nil,
	)
}

// waitForLoadStateParams are the arguments for browser_wait_for_load_state.
type waitForLoadStateParams struct {
	State string `json:"state"`
}

// Execute waits for the load state.
func (t *WaitForLoadStateTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input waitForLoadStateParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	state := input.State
	if state == "" {
		state = "load"
	}
	if !validLoadStates[state] {
		return "", fmt.Errorf("invalid load state: %s (must be 'load', 'domcontentloaded', or 'networkidle')", state)
	}

	if err := t.manager.WaitForLoadState(state); err != nil {
		return "", fmt.Errorf("failed to wait for load state %s: %w", state, err)
	}
	return fmt.Sprintf("Page reached load state: %s", state), nil
}
