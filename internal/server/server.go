// Package server exposes the diagram document model as an MCP tool
// server. Every public document operation is one named tool; results and
// domain errors travel as JSON tool output, never as protocol errors.
//
// Each MCP session works on its own document via the session registry.
// Transports: stdio for a single local client, streamable HTTP behind a
// chi router for remote ones.
package server

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/drawdeck/drawdeck/pkg/buildinfo"
	"github.com/drawdeck/drawdeck/pkg/diagram"
	derrors "github.com/drawdeck/drawdeck/pkg/errors"
	"github.com/drawdeck/drawdeck/pkg/session"
	"github.com/drawdeck/drawdeck/pkg/shapes"
)

// defaultSession is used when the transport carries no session identity,
// which is the normal case over stdio.
const defaultSession = "default"

// Server wires the document registry and shape catalog into an MCP server.
type Server struct {
	logger   *charmlog.Logger
	registry *session.Registry
	catalog  *shapes.Catalog
	mcp      *mcpserver.MCPServer
}

// New creates a fully registered server.
func New(logger *charmlog.Logger, registry *session.Registry, catalog *shapes.Catalog) *Server {
	s := &Server{
		logger:   logger,
		registry: registry,
		catalog:  catalog,
	}
	s.mcp = mcpserver.NewMCPServer("drawdeck", buildinfo.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	s.registerCellTools()
	s.registerPageTools()
	s.registerGroupTools()
	s.registerBatchTools()
	s.registerDocumentTools()
	s.registerShapeTools()
	return s
}

// ServeStdio blocks serving a single client over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return mcpserver.ServeStdio(s.mcp)
}

// sessionID resolves the calling client's session, falling back to the
// shared default when the transport has none.
func (s *Server) sessionID(ctx context.Context) string {
	if cs := mcpserver.ClientSessionFromContext(ctx); cs != nil && cs.SessionID() != "" {
		return cs.SessionID()
	}
	return defaultSession
}

// withDoc runs fn against the calling session's document.
func (s *Server) withDoc(ctx context.Context, fn func(doc *diagram.Document) error) error {
	return s.registry.With(s.sessionID(ctx), fn)
}

// =============================================================================
// Result envelope
// =============================================================================

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    derrors.Code `json:"code"`
	Message string       `json:"message"`
}

// jsonResult encodes a successful payload as a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errResult converts a domain error into the error envelope. The result is
// flagged as an error for the client but stays inside the tool protocol.
func errResult(err error) (*mcp.CallToolResult, error) {
	body := errorBody{Code: derrors.ErrCodeInternal, Message: err.Error()}
	var de *derrors.Error
	if goerrors.As(err, &de) {
		body.Code = de.Code
		body.Message = de.Message
	}
	data, merr := json.MarshalIndent(errorEnvelope{Error: body}, "", "  ")
	if merr != nil {
		return nil, fmt.Errorf("encode error envelope: %w", merr)
	}
	res := mcp.NewToolResultText(string(data))
	res.IsError = true
	return res, nil
}

// run executes op against the session document and renders either the
// payload op produced or the error envelope.
func (s *Server) run(ctx context.Context, op func(doc *diagram.Document) (any, error)) (*mcp.CallToolResult, error) {
	var payload any
	err := s.withDoc(ctx, func(doc *diagram.Document) error {
		var opErr error
		payload, opErr = op(doc)
		return opErr
	})
	if err != nil {
		return errResult(err)
	}
	return jsonResult(payload)
}

// =============================================================================
// Argument helpers
// =============================================================================

// Tool arguments arrive as a decoded JSON object; numbers are float64.

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func argFloat(args map[string]any, key string) float64 {
	v, _ := args[key].(float64)
	return v
}

func argBool(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

// optFloat distinguishes "absent" from zero for clampable dimensions.
func optFloat(args map[string]any, key string) *float64 {
	v, ok := args[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

func optString(args map[string]any, key string) *string {
	v, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &v
}
