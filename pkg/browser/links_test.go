package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLinksTool_Name(t *testing.T) {
	tool := NewGetLinksTool(newTestManager())
	assert.Equal(t, "browser_get_links", tool.Name())
}

func TestGetLinksTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewGetLinksTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"limit":0}`))
	assert.ErrorContains(t, err, "limit must be positive")

	_, err = tool.Execute(context.Background(), json.RawMessage(`{"limit":-3}`))
	assert.ErrorContains(t, err, "limit must be positive")
}
