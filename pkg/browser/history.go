package browser

import (
	"context"
	"encoding/json"

	"github.com/entrhq/surf/pkg/tools"
)

// GoBackTool navigates the current tab back in history.
type GoBackTool struct {
	manager *Manager
}

// NewGoBackTool creates a new go-back tool.
func NewGoBackTool(manager *Manager) *GoBackTool {
	return &GoBackTool{manager: manager}
}

// Name returns the tool name.
func (t *GoBackTool) Name() string {
	return "browser_go_back"
}

// Description returns the tool description.
func (t *GoBackTool) Description() string {
	return "Go back in the current tab's browsing history."
}

// Schema returns the tool's JSON schema.
func (t *GoBackTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute goes back one history entry.
func (t *GoBackTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	if err := t.manager.GoBack(); err != nil {
		return "", err
	}
	return "Successfully navigated back", nil
}

// GoForwardTool navigates the current tab forward in history.
type GoForwardTool struct {
	manager *Manager
}

// NewGoForwardTool creates a new go-forward tool.
func NewGoForwardTool(manager *Manager) *GoForwardTool {
	return &GoForwardTool{manager: manager}
}

// Name returns the tool name.
func (t *GoForwardTool) Name() string {
	return "browser_go_forward"
}

// Description returns the tool description.
func (t *GoForwardTool) Description() string {
	return "Go forward in the current tab's browsing history."
}

// Schema returns the tool's JSON schema.
func (t *GoForwardTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute goes forward one history entry.
func (t *GoForwardTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	if err := t.manager.GoForward(); err != nil {
		return "", err
	}
	return "Successfully navigated forward", nil
}

// ReloadTool reloads the current tab.
type ReloadTool struct {
	manager *Manager
}

// NewReloadTool creates a new reload tool.
func NewReloadTool(manager *Manager) *ReloadTool {
	return &ReloadTool{manager: manager}
}

// Name returns the tool name.
func (t *ReloadTool) Name() string {
	return "browser_reload"
}

// Description returns the tool description.
func (t *ReloadTool) Description() string {
	return "Reload the current page."
}

// Schema returns the tool's JSON schema.
func (t *ReloadTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute reloads the page.
func (t *ReloadTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	if err := t.manager.Reload(); err != nil {
		return "", err
	}
	return "Successfully reloaded page", nil
}
