// Package tools defines the tool contract shared by the MCP dispatcher and
// the browser tool implementations.
package tools

import (
	"context"
	"encoding/json"
)

// Tool represents a named operation exposed to a calling AI assistant.
// Tools validate their own arguments against the declared schema before
// touching the browser, and report everything (success or failure detail)
// as a single descriptive string.
type Tool interface {
	// Name returns the unique identifier for this tool (e.g. "browser_click").
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Schema returns the JSON Schema object describing the tool's arguments.
	Schema() map[string]interface{}

	// Execute runs the tool with the given JSON arguments and returns a
	// result string. A returned error becomes an isError tool result; it is
	// never surfaced as a protocol-level fault.
	Execute(ctx context.Context, arguments json.RawMessage) (string, error)
}

// BaseToolSchema creates a common JSON schema structure for a tool
// with the given properties and required fields.
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// DecodeArguments unmarshals tool arguments into v. A missing or empty
// arguments object decodes into the zero value so tools with no required
// parameters accept bare calls.
func DecodeArguments(arguments json.RawMessage, v interface{}) error {
	if len(arguments) == 0 {
		return nil
	}
	return json.Unmarshal(arguments, v)
}
