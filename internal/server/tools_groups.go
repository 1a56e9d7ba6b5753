package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

func (s *Server) registerGroupTools() {
	s.mcp.AddTool(mcp.NewTool("create_group",
		mcp.WithDescription("Create a container group cell"),
		mcp.WithString("value", mcp.Description("Group label text")),
		mcp.WithString("style", mcp.Description("mxGraph style string (the container token is added if missing)")),
		mcp.WithNumber("x", mcp.Description("X position")),
		mcp.WithNumber("y", mcp.Description("Y position")),
		mcp.WithNumber("width", mcp.Description("Width (defaults to 200)")),
		mcp.WithNumber("height", mcp.Description("Height (defaults to 200)")),
		mcp.WithString("parent", mcp.Description("Layer or group id (optional)")),
	), s.handleCreateGroup)

	s.mcp.AddTool(mcp.NewTool("add_cell_to_group",
		mcp.WithDescription("Move a cell into a group"),
		mcp.WithString("cell_id", mcp.Description("Cell id"), mcp.Required()),
		mcp.WithString("group_id", mcp.Description("Group id"), mcp.Required()),
	), s.handleAddCellToGroup)

	s.mcp.AddTool(mcp.NewTool("remove_cell_from_group",
		mcp.WithDescription("Detach a cell from its group, back onto the active layer"),
		mcp.WithString("cell_id", mcp.Description("Cell id"), mcp.Required()),
	), s.handleRemoveCellFromGroup)

	s.mcp.AddTool(mcp.NewTool("list_group_children",
		mcp.WithDescription("List the cells inside a group"),
		mcp.WithString("group_id", mcp.Description("Group id"), mcp.Required()),
	), s.handleListGroupChildren)
}

func (s *Server) handleCreateGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.CreateGroup(diagram.GroupProps{
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

func (s *Server) handleAddCellToGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		cellID := argString(args, "cell_id")
		if err := doc.AddCellToGroup(cellID, argString(args, "group_id")); err != nil {
			return nil, err
		}
		return doc.GetCell(cellID)
	})
}

func (s *Server) handleRemoveCellFromGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		cellID := argString(args, "cell_id")
		if err := doc.RemoveCellFromGroup(cellID); err != nil {
			return nil, err
		}
		return doc.GetCell(cellID)
	})
}

func (s *Server) handleListGroupChildren(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.ListGroupChildren(argString(args, "group_id"))
	})
}
