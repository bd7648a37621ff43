package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// EvaluateTool executes JavaScript in the current page.
type EvaluateTool struct {
	manager *Manager
}

// NewEvaluateTool creates a new evaluate tool.
func NewEvaluateTool(manager *Manager) *EvaluateTool {
	return &EvaluateTool{manager: manager}
}

// Name returns the tool name.
func (t *EvaluateTool) Name() string {
	return "browser_evaluate"
}

// Description returns the tool description.
func (t *EvaluateTool) Description() string {
	return "Execute JavaScript in the current page and return the result. Can be an expression or a function body; wrap complex operations in an IIFE: (function() { /* code */ })()."
}

// Schema returns the tool's JSON schema.
func (t *EvaluateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"script": map[string]interface{}{
				"type":        "string",
				"description": "JavaScript code to execute",
			},
		},
		[]string{"script"},
	)
}

// evaluateParams are the arguments for browser_evaluate.
type evaluateParams struct {
	Script string `json:"script"`
}

// Execute evaluates the script.
func (t *EvaluateTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	var input evaluateParams
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Script == "" {
		return "", fmt.Errorf("script is required")
	}

	result, err := t.manager.Evaluate(input.Script)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate script: %w", err)
	}
	return result, nil
}
