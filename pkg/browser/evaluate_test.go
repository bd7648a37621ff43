package browser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateTool_Name(t *testing.T) {
	tool := NewEvaluateTool(newTestManager())
	assert.Equal(t, "browser_evaluate", tool.Name())
}

func TestEvaluateTool_Description(t *testing.T) {
	tool := NewEvaluateTool(newTestManager())
	assert.Contains(t, tool.Description(), "JavaScript")
}

func TestEvaluateTool_Execute_ValidationErrors(t *testing.T) {
	tool := NewEvaluateTool(newTestManager())

	_, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "script is required")
}
