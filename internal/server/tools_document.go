package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

func (s *Server) registerDocumentTools() {
	s.mcp.AddTool(mcp.NewTool("export_xml",
		mcp.WithDescription("Serialize the whole document to mxfile XML"),
		mcp.WithBoolean("compressed", mcp.Description("Emit each page's content deflate-compressed and base64-encoded, as the desktop application does")),
	), s.handleExportXML)

	s.mcp.AddTool(mcp.NewTool("import_xml",
		mcp.WithDescription("Replace the whole document with parsed mxfile XML (plain or compressed)"),
		mcp.WithString("xml", mcp.Description("mxfile XML document"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleImportXML)

	s.mcp.AddTool(mcp.NewTool("clear",
		mcp.WithDescription("Discard everything and start over with one empty page"),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleClear)

	s.mcp.AddTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Summarize the active page: counts, layers, bounding box"),
	), s.handleGetStats)
}

func (s *Server) handleExportXML(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		xml, err := doc.ExportXML(argBool(args, "compressed"))
		if err != nil {
			return nil, err
		}
		return map[string]string{"xml": xml}, nil
	})
}

func (s *Server) handleImportXML(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		if err := doc.ImportXML(argString(args, "xml")); err != nil {
			return nil, err
		}
		return map[string]any{
			"pages": doc.ListPages(),
			"cells": len(doc.ListCells()),
		}, nil
	})
}

func (s *Server) handleClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		doc.Clear()
		return doc.ActivePage(), nil
	})
}

func (s *Server) handleGetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.Stats(), nil
	})
}
