package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClickTool_Name(t *testing.T) {
	tool := NewClickTool(newTestManager())
	assert.Equal(t, "browser_click", tool.Name())
}

func TestClickTool_Schema(t *testing.T) {
	tool := NewClickTool(newTestManager())
	schema := tool.Schema()

	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "selector")
	assert.Contains(t, props, "button")
	assert.Contains(t, props, "click_count")

	required := schema["required"].([]string)
	assert.Contains(t, required, "selector")
}

func TestClickTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewClickTool(newTestManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		arguments   string
		expectError string
	}{
		{
			name:        "missing selector",
			arguments:   `{}`,
			expectError: "selector is required",
		},
		{
			name:        "invalid button",
			arguments:   `{"selector":"#btn","button":"side"}`,
			expectError: "invalid button",
		},
		{
			name:        "click_count too low",
			arguments:   `{"selector":"#btn","click_count":0}`,
			expectError: "click_count must be between 1 and 3",
		},
		{
			name:        "click_count too high",
			arguments:   `{"selector":"#btn","click_count":4}`,
			expectError: "click_count must be between 1 and 3",
		},
		{
			name:        "negative timeout",
			arguments:   `{"selector":"#btn","timeout":-1}`,
			expectError: "timeout must be between",
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
