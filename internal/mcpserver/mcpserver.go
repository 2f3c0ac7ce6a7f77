// Package mcpserver exposes document generation as an MCP tool over
// stdio, so agent frameworks can drive the backend without HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matiasleandrokruk/a2ui/internal/chat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Generator produces an A2UI document for one request.
type Generator interface {
	Generate(ctx context.Context, in chat.Input) chat.Result
}

const generateUISchema = `{
  "type": "object",
  "properties": {
    "message": {"type": "string", "description": "What the user wants rendered"},
    "provider": {"type": "string", "description": "Provider id (openai, anthropic, gemini); omit for the deterministic responder"},
    "model": {"type": "string", "description": "Model id within the provider"},
    "search": {"type": "boolean", "description": "Allow web search augmentation"}
  },
  "required": ["message"]
}`

// Server serves the generate_ui tool over the MCP protocol.
type Server struct {
	server    *mcp.Server
	generator Generator
}

// New creates an MCP server backed by the given generator.
func New(version string, generator Generator) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "a2ui-backend",
		Version: version,
	}, nil)

	s := &Server{server: server, generator: generator}
	server.AddTool(&mcp.Tool{
		Name:        "generate_ui",
		Description: "Generate an A2UI document for a natural-language request",
		InputSchema: json.RawMessage(generateUISchema),
	}, s.handleGenerateUI)

	return s
}

// Serve reads MCP requests from in and writes responses to out. It
// blocks until ctx is cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

type generateUIArgs struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Search   bool   `json:"search"`
}

func (s *Server) handleGenerateUI(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	if args == nil {
		args = json.RawMessage("{}")
	}

	var in generateUIArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if in.Message == "" {
		return toolError("message is required"), nil
	}

	res := s.generator.Generate(ctx, chat.Input{
		Message:  in.Message,
		Provider: in.Provider,
		Model:    in.Model,
		Search:   in.Search,
	})

	doc, err := json.Marshal(res.Document)
	if err != nil {
		return toolError(fmt.Sprintf("encode document: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(doc)}},
	}, nil
}

func toolError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
