package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTextTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewGetTextTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "selector is required")

	_, err = tool.Execute(context.Background(), json.RawMessage(`{"selector":"h1","timeout":-1}`))
	assert.ErrorContains(t, err, "timeout must be between")
}

func TestGetAttributeTool_Schema(t *testing.T) {
	tool := NewGetAttributeTool(newTestManager())
	schema := tool.Schema()

	required := schema["required"].([]string)
	assert.Contains(t, required, "selector")
	assert.Contains(t, required, "attribute")
}

func TestGetAttributeTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewGetAttributeTool(newTestManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		arguments   string
		expectError string
	}{
		{
			name:        "missing selector",
			arguments:   `{"attribute":"href"}`,
			expectError: "selector is required",
		},
		{
			name:        "missing attribute",
			arguments:   `{"selector":"a"}`,
			expectError: "attribute is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(ctx, json.RawMessage(tt.arguments))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestReadOnlyTools_Names(t *testing.T) {
	m := newTestManager()
	assert.Equal(t, "browser_get_text", NewGetTextTool(m).Name())
	assert.Equal(t, "browser_get_attribute", NewGetAttributeTool(m).Name())
	assert.Equal(t, "browser_get_url", NewGetURLTool(m).Name())
	assert.Equal(t, "browser_get_title", NewGetTitleTool(m).Name())
}
