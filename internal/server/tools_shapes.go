package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

func (s *Server) registerShapeTools() {
	s.mcp.AddTool(mcp.NewTool("list_shape_categories",
		mcp.WithDescription("List the shape catalog's categories"),
	), s.handleListShapeCategories)

	s.mcp.AddTool(mcp.NewTool("list_shapes",
		mcp.WithDescription("List catalog shapes, optionally one category only"),
		mcp.WithString("category", mcp.Description("Category filter (optional)")),
	), s.handleListShapes)

	s.mcp.AddTool(mcp.NewTool("search_shapes",
		mcp.WithDescription("Fuzzy-search catalog shapes by name"),
		mcp.WithString("query", mcp.Description("Search text"), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Maximum results (optional)")),
	), s.handleSearchShapes)

	s.mcp.AddTool(mcp.NewTool("get_shape",
		mcp.WithDescription("Look up one shape by name or alias, including its style string"),
		mcp.WithString("name", mcp.Description("Shape name"), mcp.Required()),
	), s.handleGetShape)

	s.mcp.AddTool(mcp.NewTool("add_shape",
		mcp.WithDescription("Add a vertex styled as a named catalog shape"),
		mcp.WithString("shape", mcp.Description("Shape name or alias"), mcp.Required()),
		mcp.WithString("value", mcp.Description("Label text")),
		mcp.WithNumber("x", mcp.Description("X position")),
		mcp.WithNumber("y", mcp.Description("Y position")),
		mcp.WithNumber("width", mcp.Description("Width (defaults to 120, minimum 1)")),
		mcp.WithNumber("height", mcp.Description("Height (defaults to 60, minimum 1)")),
		mcp.WithString("parent", mcp.Description("Layer or group id (optional)")),
	), s.handleAddShape)
}

func (s *Server) handleListShapeCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats, err := s.catalog.Categories()
	if err != nil {
		return errResult(err)
	}
	return jsonResult(cats)
}

func (s *Server) handleListShapes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shapes, err := s.catalog.List(argString(req.GetArguments(), "category"))
	if err != nil {
		return errResult(err)
	}
	return jsonResult(shapes)
}

func (s *Server) handleSearchShapes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	results, err := s.catalog.Search(argString(args, "query"), int(argFloat(args, "limit")))
	if err != nil {
		return errResult(err)
	}
	return jsonResult(results)
}

func (s *Server) handleGetShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shape, err := s.catalog.Get(argString(req.GetArguments(), "name"))
	if err != nil {
		return errResult(err)
	}
	return jsonResult(shape)
}

func (s *Server) handleAddShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	style, err := s.catalog.StyleFor(argString(args, "shape"))
	if err != nil {
		return errResult(err)
	}
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.AddVertex(diagram.VertexProps{
			Value:  argString(args, "value"),
			Style:  style,
			X:      argFloat(args, "x"),
			Y:      argFloat(args, "y"),
			Width:  optFloat(args, "width"),
			Height: optFloat(args, "height"),
			Parent: argString(args, "parent"),
		})
	})
}
