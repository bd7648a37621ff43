package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeTextTool_Name(t *testing.T) {
	tool := NewTypeTextTool(newTestManager())
	assert.Equal(t, "browser_type_text", tool.Name())
}

func TestTypeTextTool_Schema(t *testing.T) {
	tool := NewTypeTextTool(newTestManager())
	schema := tool.Schema()

	required := schema["required"].([]string)
	assert.Contains(t, required, "selector")
	assert.Contains(t, required, "text")
}

func TestTypeTextTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewTypeTextTool(newTestManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		arguments   string
		expectError string
	}{
		{
			name:        "missing selector",
			arguments:   `{"text":"hello"}`,
			expectError: "selector is required",
		},
		{
			name:        "missing text",
			arguments:   `{"selector":"#input"}`,
			expectError: "text is required",
		},
		{
			name:        "negative timeout",
			arguments:   `{"selector":"#input","text":"x","timeout":-1}`,
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

func TestSelectOptionTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewSelectOptionTool(newTestManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		arguments   string
		expectError string
	}{
		{
			name:        "missing selector",
			arguments:   `{"value":"us"}`,
			expectError: "selector is required",
		},
		{
			name:        "missing value",
			arguments:   `{"selector":"#country"}`,
			expectError: "value is required",
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

func TestCheckboxTools_Names(t *testing.T) {
	m := newTestManager()
	assert.Equal(t, "browser_check_checkbox", NewCheckCheckboxTool(m).Name())
	assert.Equal(t, "browser_uncheck_checkbox", NewUncheckCheckboxTool(m).Name())
}

func TestCheckboxTools_Execute_ValidationErrors(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	_, err := NewCheckCheckboxTool(m).Execute(ctx, json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "selector is required")

	_, err = NewUncheckCheckboxTool(m).Execute(ctx, json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "selector is required")

	_, err = NewCheckCheckboxTool(m).Execute(ctx, json.RawMessage(`{"selector":"#opt-in","timeout":-2}`))
	assert.ErrorContains(t, err, "timeout must be between")
}

func TestHoverTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewHoverTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "selector is required")
}

func TestScrollToTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewScrollToTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "selector is required")
}
