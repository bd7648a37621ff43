package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/surf/pkg/tools"
)

// stubTool echoes its argument or fails on demand.
type stubTool struct {
	name string
	fail bool
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub tool" }
func (s *stubTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{
		"value": map[string]interface{}{"type": "string"},
	}, nil)
}

func (s *stubTool) Execute(ctx context.Context, arguments json.RawMessage) (string, error) {
	if s.fail {
		return "", fmt.Errorf("element not found")
	}
	var input struct {
		Value string `json:"value"`
	}
	if err := tools.DecodeArguments(arguments, &input); err != nil {
		return "", err
	}
	return "echo: " + input.Value, nil
}

func newTestServer(t *testing.T, ts ...tools.Tool) *Server {
	t.Helper()
	registry := tools.NewRegistry()
	registry.MustRegister(ts...)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewServer(ServerInfo{Name: "surf", Version: "test"}, registry, logger)
}

func request(t *testing.T, raw string) Request {
	t.Helper()
	var req Request
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return req
}

func TestHandleInitialize(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"test","version":"0"}}}`))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	var result InitializeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Equal(t, "surf", result.ServerInfo.Name)
	assert.NotEmpty(t, result.Instructions)
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "alpha"}, &stubTool{name: "beta"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	var result ToolsListResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 2)
	assert.Equal(t, "alpha", result.Tools[0].Name)
	assert.Equal(t, "beta", result.Tools[1].Name)
	assert.Equal(t, "object", result.Tools[0].InputSchema["type"])
}

func TestHandleToolsCall(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"stub","arguments":{"value":"hi"}}}`))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	var result ToolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "echo: hi", result.Content[0].Text)
	assert.False(t, result.IsError)
}

func TestHandleToolsCallFailureIsErrorResult(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub", fail: true})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"stub","arguments":{}}}`))

	require.NotNil(t, resp)
	// A failed tool is still a successful JSON-RPC response.
	require.Nil(t, resp.Error)

	var result ToolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.True(t, result.IsError)
	assert.Equal(t, "Error executing stub: element not found", result.Content[0].Text)
}

func TestHandleToolsCallUnknownTool(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"nope","arguments":{}}}`))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
}

func TestHandleToolsCallBadParams(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":"not-an-object"}`))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
}

func TestHandleUnknownMethod(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":7,"method":"sampling/createMessage"}`))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
}

func TestHandleNotificationGetsNoResponse(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`))

	assert.Nil(t, resp)
}

func TestHandleInvalidID(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":null,"method":"ping"}`))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidRequest, resp.Error.Code)
}

func TestHandleWrongJSONRPCVersion(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"1.0","id":8,"method":"ping"}`))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidRequest, resp.Error.Code)
}

func TestHandlePing(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	resp := s.Handle(context.Background(), request(t,
		`{"jsonrpc":"2.0","id":9,"method":"ping"}`))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `{}`, string(resp.Result))
}

func TestRunProcessesSession(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"stub","arguments":{"value":"x"}}}`,
		`this is not json`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	err := s.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Four responses: initialize, tools/call, parse error, ping. The
	// notification is silent.
	require.Len(t, lines, 4)

	var parseErr Response
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &parseErr))
	require.NotNil(t, parseErr.Error)
	assert.Equal(t, CodeParseError, parseErr.Error.Code)

	var pong Response
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &pong))
	assert.Equal(t, float64(3), pong.ID)
	assert.Nil(t, pong.Error)
}

func TestRunReturnsOnContextCancel(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	// A pipe with no writer activity keeps the reader blocked, which is the
	// state an idle stdio client leaves the server in.
	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, in, &bytes.Buffer{})
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunRecoversFromOversizedMessage(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	input := strings.Repeat("x", maxLineBytes+1) + "\n" +
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"

	var out bytes.Buffer
	err := s.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var tooBig Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &tooBig))
	require.NotNil(t, tooBig.Error)
	assert.Equal(t, CodeParseError, tooBig.Error.Code)

	// The loop keeps serving after the oversized request.
	var pong Response
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &pong))
	assert.Nil(t, pong.Error)
	assert.Equal(t, float64(1), pong.ID)
}

func TestRunSkipsBlankLines(t *testing.T) {
	s := newTestServer(t, &stubTool{name: "stub"})

	input := "\n\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n"

	var out bytes.Buffer
	err := s.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 1)
}
