package mcp

import (
	"bytes"
	"encoding/json"
)

// ProtocolVersion is the MCP protocol revision this server implements.
const ProtocolVersion = "2024-11-05"

// Request represents an incoming JSON-RPC 2.0 request or notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"` // string, number, or absent per JSON-RPC 2.0
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`

	idPresent bool
	idInvalid bool
}

// UnmarshalJSON tracks whether the id field was present and whether it held
// a valid type, so notifications can be told apart from malformed requests.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw struct {
		JSONRPC string          `json:"jsonrpc"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}

	r.JSONRPC = raw.JSONRPC
	r.Method = raw.Method
	r.Params = raw.Params
	r.ID = nil
	r.idInvalid = false

	rawID, ok := object["id"]
	r.idPresent = ok
	if !ok {
		return nil
	}

	trimmed := bytes.TrimSpace(rawID)
	if bytes.Equal(trimmed, []byte("null")) {
		r.idInvalid = true
		return nil
	}

	var parsed any
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return err
	}
	switch parsed.(type) {
	case string, float64:
		r.ID = parsed
	default:
		r.idInvalid = true
	}
	return nil
}

// IsNotification reports whether the request carries no id and therefore
// must not receive a response.
func (r Request) IsNotification() bool {
	return !r.idPresent
}

// HasInvalidID reports whether the id field was present but null or of an
// unsupported type.
func (r Request) HasInvalidID() bool {
	return r.idInvalid
}

// Response represents an outgoing JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error represents a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Standard JSON-RPC 2.0 error codes used by the dispatcher.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// ToolDescriptor describes a tool in tools/list results.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ContentBlock is a single content block in a tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the result payload of a tools/call response.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// InitializeResult is the result payload of an initialize response.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
	Capabilities    Capabilities `json:"capabilities"`
	Instructions    string       `json:"instructions,omitempty"`
}

// ServerInfo identifies the server to the client.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Capabilities declares what the server supports.
type Capabilities struct {
	Tools ToolsCapability `json:"tools"`
}

// ToolsCapability declares tool support.
type ToolsCapability struct{}

// ToolsListResult is the result payload of a tools/list response.
type ToolsListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// textResult builds a tool result with a single text content block.
func textResult(text string) json.RawMessage {
	result := ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
	return mustMarshal(result, `{"content":[{"type":"text","text":"internal error: failed to marshal result"}]}`)
}

// errorResult builds a tool result flagged as an error. Tool failures travel
// on the string channel, not as protocol errors.
func errorResult(text string) json.RawMessage {
	result := ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
	return mustMarshal(result, `{"content":[{"type":"text","text":"internal error: failed to marshal result"}],"isError":true}`)
}

// mustMarshal marshals v, falling back to a pre-baked payload if the
// encoder somehow fails on a plain struct.
func mustMarshal(v any, fallback string) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(fallback)
	}
	return data
}
