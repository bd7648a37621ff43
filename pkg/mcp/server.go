// Package mcp implements the Model Context Protocol server side: JSON-RPC
// 2.0 framing over newline-delimited stdio, method dispatch, and tool call
// routing. Tool semantics live in pkg/browser; this package only owns the
// wire format.
package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/entrhq/surf/pkg/tools"
)

// maxLineBytes bounds a single JSON-RPC message. Scripts passed to
// browser_evaluate can be large, so this is generous.
const maxLineBytes = 10 * 1024 * 1024

const serverInstructions = `surf exposes a shared headless browser through browser_* tools.

Workflow:
- browser_navigate loads a page; the browser starts lazily on the first call.
- Interaction tools (click, type_text, select_option, check/uncheck, hover) take CSS selectors and a timeout in milliseconds.
- Read tools (get_text, get_attribute, get_url, get_title, get_links) return plain strings.
- browser_screenshot saves to a file when 'path' is given, otherwise returns a base64 preview.
- Tabs: new_tab / list_tabs / select_tab / close_tab. The last tab cannot be closed; the browser lives until the server exits.

All results are single strings. Failed operations come back as isError tool results with a descriptive message; fix the arguments or page state and retry.`

// Server dispatches MCP requests to registered tools over a line-oriented
// JSON-RPC transport.
type Server struct {
	info     ServerInfo
	registry *tools.Registry
	logger   logrus.FieldLogger

	writeMu sync.Mutex
	out     io.Writer
}

// NewServer creates a server for the given tool registry.
func NewServer(info ServerInfo, registry *tools.Registry, logger logrus.FieldLogger) *Server {
	return &Server{
		info:     info,
		registry: registry,
		logger:   logger,
	}
}

// Run reads newline-delimited JSON-RPC messages from in and writes responses
// to out until in is exhausted or ctx is cancelled. Reading happens on a
// separate goroutine so cancellation is observed even while blocked waiting
// for the next line. Notifications receive no response.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.out = out

	lines := make(chan inboundLine)
	readErr := make(chan error, 1)
	go readLines(in, lines, readErr)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("transport read failed: %w", err)
				}
				return nil
			}
			s.handleLine(ctx, msg)
		}
	}
}

// handleLine dispatches one transport line.
func (s *Server) handleLine(ctx context.Context, msg inboundLine) {
	if msg.tooLong {
		s.logger.Warn("dropping oversized request")
		s.write(&Response{
			JSONRPC: "2.0",
			ID:      nil,
			Error:   &Error{Code: CodeParseError, Message: fmt.Sprintf("Parse error: message exceeds %d bytes", maxLineBytes)},
		})
		return
	}
	if len(msg.data) == 0 {
		return
	}

	var req Request
	if err := json.Unmarshal(msg.data, &req); err != nil {
		s.logger.WithError(err).Warn("failed to parse request")
		s.write(&Response{
			JSONRPC: "2.0",
			ID:      nil,
			Error:   &Error{Code: CodeParseError, Message: "Parse error: " + err.Error()},
		})
		return
	}

	if resp := s.Handle(ctx, req); resp != nil {
		s.write(resp)
	}
}

// inboundLine is one line read from the transport. tooLong marks a message
// that exceeded maxLineBytes and had its content discarded.
type inboundLine struct {
	data    []byte
	tooLong bool
}

// readLines feeds transport lines to the dispatch loop. When the reader is
// done it delivers the final error (nil on EOF) and closes lines.
func readLines(in io.Reader, lines chan<- inboundLine, readErr chan<- error) {
	reader := bufio.NewReaderSize(in, 64*1024)
	for {
		line, tooLong, err := readBoundedLine(reader)
		if len(line) > 0 || tooLong {
			lines <- inboundLine{data: line, tooLong: tooLong}
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			readErr <- err
			close(lines)
			return
		}
	}
}

// readBoundedLine reads one newline-terminated line. A line longer than
// maxLineBytes is drained and reported as too long rather than failing the
// transport, so a single oversized request cannot take the server down.
func readBoundedLine(r *bufio.Reader) ([]byte, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineBytes {
				line = nil
				tooLong = true
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return bytes.TrimRight(line, "\r\n"), tooLong, err
	}
}

// write serializes a response followed by a newline. Serialized under a
// mutex so shutdown-path writes cannot interleave with the loop.
func (s *Server) write(resp *Response) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.WithError(err).Error("failed to marshal response")
		return
	}
	data = append(data, '\n')
	if _, err := s.out.Write(data); err != nil {
		s.logger.WithError(err).Error("failed to write response")
	}
}

// Handle processes a single request and returns the response, or nil for
// notifications.
func (s *Server) Handle(ctx context.Context, req Request) *Response {
	if req.HasInvalidID() {
		return &Response{
			JSONRPC: "2.0",
			ID:      nil,
			Error:   &Error{Code: CodeInvalidRequest, Message: "Invalid Request: id must be a string or number"},
		}
	}

	if req.IsNotification() {
		// Notifications never get responses per JSON-RPC 2.0.
		return nil
	}

	if req.JSONRPC != "2.0" {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: CodeInvalidRequest, Message: `Invalid Request: jsonrpc must be "2.0"`},
		}
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping", "initialized", "notifications/initialized":
		return &Response{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(`{}`)}
	case "prompts/list":
		return &Response{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(`{"prompts":[]}`)}
	case "resources/list":
		return &Response{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(`{"resources":[]}`)}
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Error:   &Error{Code: CodeMethodNotFound, Message: "Method not found: " + req.Method},
	}
}

func (s *Server) handleInitialize(req Request) *Response {
	version := negotiateProtocolVersion(req.Params)

	result := InitializeResult{
		ProtocolVersion: version,
		ServerInfo:      s.info,
		Capabilities:    Capabilities{Tools: ToolsCapability{}},
		Instructions:    serverInstructions,
	}
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  mustMarshal(result, `{}`),
	}
}

// negotiateProtocolVersion echoes the client's requested version when it is
// one we know, otherwise answers with our own.
func negotiateProtocolVersion(params json.RawMessage) string {
	if len(params) == 0 {
		return ProtocolVersion
	}
	var p struct {
		ProtocolVersion string `json:"protocolVersion"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.ProtocolVersion == "" {
		return ProtocolVersion
	}
	switch p.ProtocolVersion {
	case "2024-11-05", "2025-03-26", "2025-06-18":
		return p.ProtocolVersion
	}
	return ProtocolVersion
}

func (s *Server) handleToolsList(req Request) *Response {
	all := s.registry.List()
	descriptors := make([]ToolDescriptor, 0, len(all))
	for _, t := range all {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema(),
		})
	}

	result := ToolsListResult{Tools: descriptors}
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  mustMarshal(result, `{"tools":[]}`),
	}
}

func (s *Server) handleToolsCall(ctx context.Context, req Request) *Response {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: CodeInvalidParams, Message: "Invalid params: " + err.Error()},
		}
	}

	tool, ok := s.registry.Get(params.Name)
	if !ok {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: CodeMethodNotFound, Message: "Unknown tool: " + params.Name},
		}
	}

	log := s.logger.WithField("tool", params.Name)
	log.Debug("executing tool")

	output, err := tool.Execute(ctx, params.Arguments)
	if err != nil {
		// Tool failures stay on the string channel as isError results so the
		// calling assistant can read them and adjust.
		log.WithError(err).Warn("tool execution failed")
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  errorResult(fmt.Sprintf("Error executing %s: %s", params.Name, err.Error())),
		}
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  textResult(output),
	}
}
