package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/tools"
)

// NewTabTool opens a new tab and makes it current.
type NewTabTool struct {
	manager *Manager
}

// NewNewTabTool creates a new new-tab tool.
func NewNewTabTool(manager *Manager) *NewTabTool {
	return &NewTabTool{manager: manager}
}

// Name returns the tool name.
func (t *NewTabTool) Name() string {
	return "browser_new_tab"
}

// Description returns the tool description.
func (t *NewTabTool) Description() string {
	return "Open a new tab and make it the current tab. When 'url' is given the tab navigates there."
}

// Schema returns the tool's JSON schema.
func (t *NewTabTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "URL to open in the new tab (optional)",
			},
		},
		nil,
	)
}

// newTabParams are the arguments for browser_new_tab.
type newTabParams struct {
	URL string `json:"url"`
}

// Execute opens the tab.
func (t *NewTabTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input newTabParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	tab, err := t.manager.NewTab(input.URL)
	if err != nil {
		return "", err
	}
	if input.URL != "" {
		return fmt.Sprintf("Opened new tab %s at %s", tab.ID, input.URL), nil
	}
	return fmt.Sprintf("Opened new tab %s", tab.ID), nil
}

// CloseTabTool closes the current tab.
type CloseTabTool struct {
	manager *Manager
}

// NewCloseTabTool creates a new close-tab tool.
func NewCloseTabTool(manager *Manager) *CloseTabTool {
	return &CloseTabTool{manager: manager}
}

// Name returns the tool name.
func (t *CloseTabTool) Name() string {
	return "browser_close_tab"
}

// Description returns the tool description.
func (t *CloseTabTool) Description() string {
	return "Close the current tab. The most recently opened remaining tab becomes current. The last tab cannot be closed."
}

// Schema returns the tool's JSON schema.
func (t *CloseTabTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute closes the tab.
func (t *CloseTabTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	info, err := t.manager.CloseTab()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Closed tab; current tab is now %s (%s)", info.ID, info.URL), nil
}

// ListTabsTool lists all open tabs.
type ListTabsTool struct {
	manager *Manager
}

// NewListTabsTool creates a new list-tabs tool.
func NewListTabsTool(manager *Manager) *ListTabsTool {
	return &ListTabsTool{manager: manager}
}

// Name returns the tool name.
func (t *ListTabsTool) Name() string {
	return "browser_list_tabs"
}

// Description returns the tool description.
func (t *ListTabsTool) Description() string {
	return "List all open tabs with their index, handle, URL, and title. The current tab is marked with an asterisk."
}

// Schema returns the tool's JSON schema.
func (t *ListTabsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute lists the tabs.
func (t *ListTabsTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	infos := t.manager.Tabs()
	if len(infos) == 0 {
		return "No open tabs", nil
	}

	var sb strings.Builder
	for _, info := range infos {
		marker := " "
		if info.Current {
			marker = "*"
		}
		title := info.Title
		if title == "" {
			title = "[No title]"
		}
		fmt.Fprintf(&sb, "%s %d. %s  %s (%s)\n", marker, info.Index, info.ID, title, info.URL)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// SelectTabTool switches the current tab.
type SelectTabTool struct {
	manager *Manager
}

// NewSelectTabTool creates a new select-tab tool.
func NewSelectTabTool(manager *Manager) *SelectTabTool {
	return &SelectTabTool{manager: manager}
}

// Name returns the tool name.
func (t *SelectTabTool) Name() string {
	return "browser_select_tab"
}

// Description returns the tool description.
func (t *SelectTabTool) Description() string {
	return "Make another tab current. 'tab' is either a tab handle from browser_list_tabs or a zero-based index."
}

// Schema returns the tool's JSON schema.
func (t *SelectTabTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"tab": map[string]interface{}{
				"type":        "string",
				"description": "Tab handle or zero-based index",
			},
		},
		[]string{"tab"},
	)
}

// selectTabParams are the arguments for browser_select_tab.
type selectTabParams struct {
	Tab string `json:"tab"`
}

// Execute switches tabs.
func (t *SelectTabTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input selectTabParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Tab == "" {
		return "", fmt.Errorf("tab is required")
	}

	info, err := t.manager.SelectTab(input.Tab)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to tab %s (%s)", info.ID, info.URL), nil
}
