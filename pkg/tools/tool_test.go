package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseToolSchema(t *testing.T) {
	props := map[string]interface{}{
		"selector": map[string]interface{}{
			"type":        "string",
			"description": "CSS selector",
		},
	}

	schema := BaseToolSchema(props, []string{"selector"})

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, props, schema["properties"])
	assert.Equal(t, []string{"selector"}, schema["required"])
}

func TestBaseToolSchemaNoRequired(t *testing.T) {
	schema := BaseToolSchema(map[string]interface{}{}, nil)

	assert.Equal(t, "object", schema["type"])
	_, hasRequired := schema["required"]
	assert.False(t, hasRequired, "required should be omitted when empty")
}

func TestDecodeArguments(t *testing.T) {
	type params struct {
		Selector string   `json:"selector"`
		Timeout  *float64 `json:"timeout"`
	}

	tests := []struct {
		name      string
		arguments json.RawMessage
		want      params
		wantErr   bool
	}{
		{
			name:      "full arguments",
			arguments: json.RawMessage(`{"selector":"#btn","timeout":2000}`),
			want:      params{Selector: "#btn", Timeout: floatPtr(2000)},
		},
		{
			name:      "missing optional fields",
			arguments: json.RawMessage(`{"selector":"#btn"}`),
			want:      params{Selector: "#btn"},
		},
		{
			name:      "nil arguments decode to zero value",
			arguments: nil,
			want:      params{},
		},
		{
			name:      "empty arguments decode to zero value",
			arguments: json.RawMessage(``),
			want:      params{},
		},
		{
			name:      "malformed JSON",
			arguments: json.RawMessage(`{"selector":`),
			wantErr:   true,
		},
		{
			name:      "wrong type",
			arguments: json.RawMessage(`{"timeout":"fast"}`),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got params
			err := DecodeArguments(tt.arguments, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }
