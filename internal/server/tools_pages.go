package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

func (s *Server) registerPageTools() {
	s.mcp.AddTool(mcp.NewTool("add_page",
		mcp.WithDescription("Create a new page. The new page does not become active"),
		mcp.WithString("name", mcp.Description("Display name (optional, defaults to Page-N)")),
	), s.handleAddPage)

	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List every page, flagging the active one"),
	), s.handleListPages)

	s.mcp.AddTool(mcp.NewTool("set_active_page",
		mcp.WithDescription("Switch which page subsequent operations work on"),
		mcp.WithString("id", mcp.Description("Page id"), mcp.Required()),
	), s.handleSetActivePage)

	s.mcp.AddTool(mcp.NewTool("rename_page",
		mcp.WithDescription("Rename a page"),
		mcp.WithString("id", mcp.Description("Page id"), mcp.Required()),
		mcp.WithString("name", mcp.Description("New display name"), mcp.Required()),
	), s.handleRenamePage)

	s.mcp.AddTool(mcp.NewTool("delete_page",
		mcp.WithDescription("Delete a page and everything on it. The last page cannot be deleted"),
		mcp.WithString("id", mcp.Description("Page id"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeletePage)

	s.mcp.AddTool(mcp.NewTool("add_layer",
		mcp.WithDescription("Create a layer on the active page"),
		mcp.WithString("name", mcp.Description("Display name (optional)")),
	), s.handleAddLayer)

	s.mcp.AddTool(mcp.NewTool("list_layers",
		mcp.WithDescription("List the active page's layers, flagging the active one"),
	), s.handleListLayers)

	s.mcp.AddTool(mcp.NewTool("set_active_layer",
		mcp.WithDescription("Switch the layer new cells default to"),
		mcp.WithString("id", mcp.Description("Layer id"), mcp.Required()),
	), s.handleSetActiveLayer)

	s.mcp.AddTool(mcp.NewTool("move_cell_to_layer",
		mcp.WithDescription("Reparent a cell to a layer"),
		mcp.WithString("cell_id", mcp.Description("Cell id"), mcp.Required()),
		mcp.WithString("layer_id", mcp.Description("Layer id"), mcp.Required()),
	), s.handleMoveCellToLayer)

	s.mcp.AddTool(mcp.NewTool("delete_layer",
		mcp.WithDescription("Delete a layer and every cell on it. The default layer cannot be deleted"),
		mcp.WithString("id", mcp.Description("Layer id"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteLayer)
}

func (s *Server) handleAddPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.AddPage(argString(args, "name")), nil
	})
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.ListPages(), nil
	})
}

func (s *Server) handleSetActivePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		if err := doc.SetActivePage(argString(args, "id")); err != nil {
			return nil, err
		}
		return doc.ActivePage(), nil
	})
}

func (s *Server) handleRenamePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		id := argString(args, "id")
		if err := doc.RenamePage(id, argString(args, "name")); err != nil {
			return nil, err
		}
		return doc.ListPages(), nil
	})
}

func (s *Server) handleDeletePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		if err := doc.DeletePage(argString(args, "id")); err != nil {
			return nil, err
		}
		return doc.ListPages(), nil
	})
}

func (s *Server) handleAddLayer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.AddLayer(argString(args, "name")), nil
	})
}

func (s *Server) handleListLayers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.ListLayers(), nil
	})
}

func (s *Server) handleSetActiveLayer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		if err := doc.SetActiveLayer(argString(args, "id")); err != nil {
			return nil, err
		}
		return doc.ListLayers(), nil
	})
}

func (s *Server) handleMoveCellToLayer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		cellID := argString(args, "cell_id")
		if err := doc.MoveCellToLayer(cellID, argString(args, "layer_id")); err != nil {
			return nil, err
		}
		return doc.GetCell(cellID)
	})
}

func (s *Server) handleDeleteLayer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		if err := doc.DeleteLayer(argString(args, "id")); err != nil {
			return nil, err
		}
		return doc.ListLayers(), nil
	})
}
