package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/tools"
)

// defaultLinkLimit caps get_links output when no limit is given.
const defaultLinkLimit = 50

// GetLinksTool lists the links on the current page.
type GetLinksTool struct {
	manager *Manager
}

// NewGetLinksTool creates a new get-links tool.
func NewGetLinksTool(manager *Manager) *GetLinksTool {
	return &GetLinksTool{manager: manager}
}

// Name returns the tool name.
func (t *GetLinksTool) Name() string {
	return "browser_get_links"
}

// Description returns the tool description.
func (t *GetLinksTool) Description() string {
	return "List the links on the current page as 'text -> href', up to 'limit' entries."
}

// Schema returns the tool's JSON schema.
func (t *GetLinksTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of links to return. Default: 50",
			},
		},
		nil,
	)
}

// getLinksParams are the arguments for browser_get_links.
type getLinksParams struct {
	Limit *int `json:"limit"`
}

// Execute extracts the links.
func (t *GetLinksTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input getLinksParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	limit := defaultLinkLimit
	if input.Limit != nil {
		if *input.Limit <= 0 {
			return "", fmt.Errorf("limit must be positive")
		}
		limit = *input.Limit
	}

	links, err := t.manager.Links(limit)
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "No links found on the current page", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d links:\n", len(links))
	for i, link := range links {
		fmt.Fprintf(&sb, "%d. %s -> %s\n", i+1, link.Text, link.Href)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
