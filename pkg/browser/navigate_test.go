package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateTool_Name(t *testing.T) {
	tool := NewNavigateTool(newTestManager())
	assert.Equal(t, "browser_navigate", tool.Name())
}

func TestNavigateTool_Schema(t *testing.T) {
	tool := NewNavigateTool(newTestManager())
	schema := tool.Schema()

	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "url")
	assert.Contains(t, props, "wait_until")
	assert.Contains(t, props, "timeout")

	required := schema["required"].([]string)
	assert.Contains(t, required, "url")
}

func TestNavigateTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewNavigateTool(newTestManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		arguments   string
		expectError string
	}{
		{
			name:        "missing url",
			arguments:   `{}`,
			expectError: "url is required",
		},
		{
			name:        "invalid wait_until",
			arguments:   `{"url":"https://example.com","wait_until":"eventually"}`,
			expectError: "invalid wait_until",
		},
		{
			name:        "negative timeout",
			arguments:   `{"url":"https://example.com","timeout":-5}`,
			expectError: "timeout must be between",
		},
		{
			name:        "timeout over maximum",
			arguments:   `{"url":"https://example.com","timeout":900000}`,
			expectError: "timeout must be between",
		},
		{
			name:        "malformed arguments",
			arguments:   `{"url":42}`,
			expectError: "invalid parameters",
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
