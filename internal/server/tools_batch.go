package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

// Batch tools take their item lists as a JSON string argument; per-item
// outcomes come back as an array, one entry per input item.

func (s *Server) registerBatchTools() {
	s.mcp.AddTool(mcp.NewTool("batch_add_cells",
		mcp.WithDescription("Create many vertices and edges at once. Items may carry a temp_id other items reference as source/target, in either direction. Failures are per item"),
		mcp.WithString("items", mcp.Description(`JSON array of items [{temp_id?, kind: "vertex"|"edge", value?, style?, x?, y?, width?, height?, parent?, source?, target?}, ...]`), mcp.Required()),
		mcp.WithBoolean("dry_run", mcp.Description("Validate and preview without changing the document")),
	), s.handleBatchAddCells)

	s.mcp.AddTool(mcp.NewTool("batch_edit_cells",
		mcp.WithDescription("Edit many cells at once. Failures are per item"),
		mcp.WithString("items", mcp.Description(`JSON array of items [{id, kind: "vertex"|"edge", vertex?: {...patch}, edge?: {...patch}}, ...]`), mcp.Required()),
	), s.handleBatchEditCells)

	s.mcp.AddTool(mcp.NewTool("batch_create_groups",
		mcp.WithDescription("Create many groups at once. Failures are per item"),
		mcp.WithString("items", mcp.Description(`JSON array of group definitions [{value?, style?, x?, y?, width?, height?, parent?}, ...]`), mcp.Required()),
	), s.handleBatchCreateGroups)

	s.mcp.AddTool(mcp.NewTool("batch_add_cells_to_group",
		mcp.WithDescription("Assign many cells to groups at once. Failures are per item"),
		mcp.WithString("items", mcp.Description(`JSON array of assignments [{cell_id, group_id}, ...]`), mcp.Required()),
	), s.handleBatchAddCellsToGroup)
}

// decodeItems parses a batch tool's JSON items argument.
func decodeItems[T any](args map[string]any) ([]T, error) {
	raw := argString(args, "items")
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	return items, nil
}

func (s *Server) handleBatchAddCells(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	items, err := decodeItems[diagram.BatchCellItem](args)
	if err != nil {
		return errResult(err)
	}
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.BatchAddCells(items, argBool(args, "dry_run")), nil
	})
}

func (s *Server) handleBatchEditCells(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := decodeItems[diagram.BatchEditItem](req.GetArguments())
	if err != nil {
		return errResult(err)
	}
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.BatchEditCells(items), nil
	})
}

func (s *Server) handleBatchCreateGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := decodeItems[diagram.GroupProps](req.GetArguments())
	if err != nil {
		return errResult(err)
	}
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.BatchCreateGroups(items), nil
	})
}

func (s *Server) handleBatchAddCellsToGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := decodeItems[diagram.GroupMember](req.GetArguments())
	if err != nil {
		return errResult(err)
	}
	return s.run(ctx, func(doc *diagram.Document) (any, error) {
		return doc.BatchAddCellsToGroup(items), nil
	})
}
