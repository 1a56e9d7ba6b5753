package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

func (s *Server) registerCellTools() {
	s.mcp.AddTool(mcp.NewTool("add_vertex",
		mcp.WithDescription("Add a vertex (box) to the active page"),
		mcp.WithString("value", mcp.Description("Label text")),
		mcp.WithString("style", mcp.Description("mxGraph style string (optional, defaults to a plain rectangle)")),
		mcp.WithNumber("x", mcp.Description("X position")),
		mcp.WithNumber("y", mcp.Description("Y position")),
		mcp.WithNumber("width", mcp.Description("Width (defaults to 120, minimum 1)")),
		mcp.WithNumber("height", mcp.Description("Height (defaults to 60, minimum 1)")),
		mcp.WithString("parent", mcp.Description("Layer or group id (optional, defaults to the active layer)")),
	), s.handleAddVertex)

	s.mcp.AddTool(mcp.NewTool("add_edge",
		mcp.WithDescription("Connect two existing cells with an edge"),
		mcp.WithString("source", mcp.Description("Source cell id"), mcp.Required()),
		mcp.WithString("target", mcp.Description("Target cell id"), mcp.Required()),
		mcp.WithString("value", mcp.Description("Edge label text")),
		mcp.WithString("style", mcp.Description("mxGraph style string (optional)")),
		mcp.WithString("parent", mcp.Description("Layer or group id (optional)")),
	), s.handleAddEdge)

	s.mcp.AddTool(mcp.NewTool("edit_vertex",
		mcp.WithDescription("Update a vertex. Only provided fields change"),
		mcp.WithString("id", mcp.Description("Vertex id"), mcp.Required()),
		mcp.WithString("value", mcp.Description("New label text")),
		mcp.WithString("style", mcp.Description("New style string")),
		mcp.WithNumber("x", mcp.Description("New X position")),
		mcp.WithNumber("y", mcp.Description("New Y position")),
		mcp.WithNumber("width", mcp.Description("New width (minimum 1)")),
		mcp.WithNumber("height", mcp.Description("New height (minimum 1)")),
	), s.handleEditVertex)

	s.mcp.AddTool(mcp.NewTool("edit_edge",
		mcp.WithDescription("Update an edge. Only provided fields change"),
		mcp.WithString("id", mcp.Description("Edge id"), mcp.Required()),
		mcp.WithString("value", mcp.Description("New label text")),
		mcp.WithString("style", mcp.Description("New style string")),
		mcp.WithString("source", mcp.Description("New source cell id")),
		mcp.WithString("target", mcp.Description("New target cell id")),
	), s.handleEditEdge)

	s.mcp.AddTool(mcp.NewTool("delete_cell",
		mcp.WithDescription("Delete a cell. Deleting a vertex also deletes every edge attached to it"),
		mcp.WithString("id", mcp.Description("Cell id"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteCell)

	s.mcp.AddTool(mcp.NewTool("get_cell",
		mcp.WithDescription("Fetch a single cell by id"),
		mcp.WithString("id", mcp.Description("Cell id"), mcp.Required()),
	), s.handleGetCell)

	s.mcp.AddTool(mcp.NewTool("list_cells",
		mcp.WithDescription("List every cell on the active page in creation order"),
	), s.handleListCells)
}

func boolPtr(b bool) *bool { return &b }

func (s *Server) handleAddVertex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.AddVertex(diagram.VertexProps{
			Value:  argString(args, "value"),
			Style:  argString(args, "style"),
			X:      argFloat(args, "x"),
			Y:      argFloat(args, "y"),
			Width:  optFloat(args, "width"),
			Height: optFloat(args, "height"),
			Parent: argString(args, "parent"),
		})
	})
}

func (s *Server) handleAddEdge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.AddEdge(diagram.EdgeProps{
			Source: argString(args, "source"),
			Target: argString(args, "target"),
			Value:  argString(args, "value"),
			Style:  argString(args, "style"),
			Parent: argString(args, "parent"),
		})
	})
}

func (s *Server) handleEditVertex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.EditVertex(argString(args, "id"), diagram.VertexPatch{
			Value:  optString(args, "value"),
			Style:  optString(args, "style"),
			X:      optFloat(args, "x"),
			Y:      optFloat(args, "y"),
			Width:  optFloat(args, "width"),
			Height: optFloat(args, "height"),
		})
	})
}

func (s *Server) handleEditEdge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.EditEdge(argString(args, "id"), diagram.EdgePatch{
			Value:  optString(args, "value"),
			Style:  optString(args, "style"),
			Source: optString(args, "source"),
			Target: optString(args, "target"),
		})
	})
}

func (s *Server) handleDeleteCell(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		id := argString(args, "id")
		removed, err := doc.DeleteCell(id)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"deleted":       id,
			"removed_edges": removed,
		}, nil
	})
}

func (s *Server) handleGetCell(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.GetCell(argString(args, "id"))
	})
}

func (s *Server) handleListCells(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.ListCells(), nil
	})
}
