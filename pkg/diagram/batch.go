package diagram

import (
	goerrors "errors"

	derrors "github.com/drawdeck/drawdeck/pkg/errors"
)

// BatchCellItem is one creation request in a BatchAddCells call. Vertex
// fields and edge fields share the struct; Kind selects which apply.
// TempID is a caller-supplied placeholder other items in the same batch
// may use as Source or Target, in either direction.
type BatchCellItem struct {
	TempID string `json:"temp_id,omitempty"`
	Kind   Kind   `json:"kind"`

	Value  string   `json:"value,omitempty"`
	Style  string   `json:"style,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Parent string   `json:"parent,omitempty"`

	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// BatchItemResult reports one item's outcome. Items fail independently;
// partial success is the normal shape of a batch response.
type BatchItemResult struct {
	TempID string         `json:"temp_id,omitempty"`
	OK     bool           `json:"ok"`
	Cell   *Cell          `json:"cell,omitempty"`
	Error  *derrors.Error `json:"error,omitempty"`
}

// asDomainError normalizes any error into the structured form carried by
// batch results.
func asDomainError(err error) *derrors.Error {
	var e *derrors.Error
	if goerrors.As(err, &e) {
		return e
	}
	return derrors.New(derrors.ErrCodeInternal, "%v", err)
}

// BatchAddCells stages a heterogeneous list of vertex and edge creations.
//
// The staging pass reserves a real identifier for every temporary id, so
// an edge may reference an item that appears later in the batch, and edges
// may terminate on other batch edges. A Source or Target that matches
// neither a temporary id nor an existing cell fails that item with
// INVALID_SOURCE or INVALID_TARGET; other items are unaffected. Temporary
// ids must be unique within the batch: a repeated TempID fails that item
// with INVALID_INPUT, and references resolve to the item that claimed the
// id first.
//
// With dryRun set the same validation runs and the same per-item results
// come back (including cell previews), but neither the graph nor the
// identifier allocator is touched.
func (d *Document) BatchAddCells(items []BatchCellItem, dryRun bool) []BatchItemResult {
	p := d.page()
	plan := p.seq.clone()

	// Every temporary id maps to exactly one planned identifier. A repeat
	// would let two items share an id and corrupt the page, so only the
	// first occurrence reserves; later ones fail their item outright.
	temp := make(map[string]string)
	dup := make(map[int]bool)
	for i, it := range items {
		if it.TempID == "" {
			continue
		}
		if _, seen := temp[it.TempID]; seen {
			dup[i] = true
			continue
		}
		temp[it.TempID] = plan.Next()
	}

	resolve := func(ref string, code derrors.Code) (string, *derrors.Error) {
		if real, ok := temp[ref]; ok {
			return real, nil
		}
		if _, ok := p.cell(ref); ok {
			return ref, nil
		}
		return "", derrors.New(code, "%q is neither a temporary id in this batch nor an existing cell", ref)
	}

	results := make([]BatchItemResult, 0, len(items))
	for i, it := range items {
		res := BatchItemResult{TempID: it.TempID}

		if dup[i] {
			res.Error = derrors.New(derrors.ErrCodeInvalidInput, "temporary id %q used by more than one item", it.TempID)
			results = append(results, res)
			continue
		}

		id := ""
		if it.TempID != "" {
			id = temp[it.TempID]
		} else {
			id = plan.Next()
		}

		parent, perr := p.resolveParent(it.Parent)
		if perr != nil {
			res.Error = asDomainError(perr)
			results = append(results, res)
			continue
		}

		var c *Cell
		switch it.Kind {
		case KindEdge:
			src, serr := resolve(it.Source, derrors.ErrCodeInvalidSource)
			if serr != nil {
				res.Error = serr
				results = append(results, res)
				continue
			}
			dst, terr := resolve(it.Target, derrors.ErrCodeInvalidTarget)
			if terr != nil {
				res.Error = terr
				results = append(results, res)
				continue
			}
			c = newEdge(id, parent, src, dst, it.Value, it.Style)
		default:
			c = newVertex(id, parent, VertexProps{
				Value:  it.Value,
				Style:  it.Style,
				X:      it.X,
				Y:      it.Y,
				Width:  it.Width,
				Height: it.Height,
			})
		}

		res.OK = true
		res.Cell = c.clone()
		if !dryRun {
			p.insert(c)
		}
		results = append(results, res)
	}

	if !dryRun {
		p.seq = plan
	}
	return results
}

// BatchEditItem is one edit request in a BatchEditCells call. Kind routes
// the item to the vertex or edge editor; the matching patch is applied.
type BatchEditItem struct {
	ID     string       `json:"id"`
	Kind   Kind         `json:"kind"`
	Vertex *VertexPatch `json:"vertex,omitempty"`
	Edge   *EdgePatch   `json:"edge,omitempty"`
}

// BatchEditCells edits each target independently; one item's failure
// never blocks the others.
func (d *Document) BatchEditCells(items []BatchEditItem) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(items))
	for _, it := range items {
		var (
			cell *Cell
			err  error
		)
		switch it.Kind {
		case KindEdge:
			patch := EdgePatch{}
			if it.Edge != nil {
				patch = *it.Edge
			}
			cell, err = d.EditEdge(it.ID, patch)
		default:
			patch := VertexPatch{}
			if it.Vertex != nil {
				patch = *it.Vertex
			}
			cell, err = d.EditVertex(it.ID, patch)
		}
		res := BatchItemResult{OK: err == nil, Cell: cell}
		if err != nil {
			res.Error = asDomainError(err)
		}
		results = append(results, res)
	}
	return results
}

// BatchCreateGroups creates each group independently.
func (d *Document) BatchCreateGroups(items []GroupProps) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(items))
	for _, props := range items {
		cell, err := d.CreateGroup(props)
		res := BatchItemResult{OK: err == nil, Cell: cell}
		if err != nil {
			res.Error = asDomainError(err)
		}
		results = append(results, res)
	}
	return results
}

// GroupMember names one cell-to-group assignment in a batch.
type GroupMember struct {
	CellID  string `json:"cell_id"`
	GroupID string `json:"group_id"`
}

// BatchAddCellsToGroup performs each assignment independently.
func (d *Document) BatchAddCellsToGroup(items []GroupMember) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(items))
	for _, m := range items {
		err := d.AddCellToGroup(m.CellID, m.GroupID)
		res := BatchItemResult{OK: err == nil}
		if err != nil {
			res.Error = asDomainError(err)
		} else if c, gerr := d.GetCell(m.CellID); gerr == nil {
			res.Cell = c
		}
		results = append(results, res)
	}
	return results
}
