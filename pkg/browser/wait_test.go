package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitForSelectorTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewWaitForSelectorTool(newTestManager())
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
			name:        "invalid state",
			arguments:   `{"selector":"#spinner","state":"gone"}`,
			expectError: "invalid state",
		},
		{
			name:        "negative timeout",
			arguments:   `{"selector":"#spinner","timeout":-1}`,
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

func TestWaitForLoadStateTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewWaitForLoadStateTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"state":"settled"}`))
	assert.ErrorContains(t, err, "invalid load state")
}
