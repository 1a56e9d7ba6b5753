package diagram

import (
	derrors "github.com/drawdeck/drawdeck/pkg/errors"
)

// Document is the root of the model: an ordered set of pages with a
// document-level page id sequence and a single active-page pointer.
// The zero value is not usable; call New.
type Document struct {
	pages   []*page
	active  int
	pageSeq *sequence
}

// New creates a document with one empty page and its default layer.
func New() *Document {
	d := &Document{pageSeq: newSequence("page-", 1)}
	d.pages = append(d.pages, newPage(d.pageSeq.Next(), "Page-1"))
	return d
}

// Clear discards every page and reinitializes the document to a single
// empty page with a default layer. All identifier counters are reset, so
// a cleared document behaves exactly like a fresh one.
func (d *Document) Clear() {
	*d = *New()
}

// page returns the active page. A document always has at least one.
func (d *Document) page() *page {
	return d.pages[d.active]
}

// =============================================================================
// Pages
// =============================================================================

// AddPage creates a new page with its own layers and identifier counter.
// The new page does not become active; use SetActivePage.
// An empty name defaults to "Page-N".
func (d *Document) AddPage(name string) PageInfo {
	id := d.pageSeq.Next()
	if name == "" {
		name = "Page-" + id[len("page-"):]
	}
	p := newPage(id, name)
	d.pages = append(d.pages, p)
	return PageInfo{ID: p.id, Name: p.name}
}

// ListPages returns every page in creation order, flagging the active one.
func (d *Document) ListPages() []PageInfo {
	infos := make([]PageInfo, len(d.pages))
	for i, p := range d.pages {
		infos[i] = PageInfo{ID: p.id, Name: p.name, Active: i == d.active}
	}
	return infos
}

// ActivePage describes the page subsequent operations read and write.
func (d *Document) ActivePage() PageInfo {
	p := d.page()
	return PageInfo{ID: p.id, Name: p.name, Active: true}
}

// SetActivePage switches the active page. This is a pure pointer swap
// between independent graph slices; no state is copied or merged.
func (d *Document) SetActivePage(id string) error {
	for i, p := range d.pages {
		if p.id == id {
			d.active = i
			return nil
		}
	}
	return derrors.New(derrors.ErrCodePageNotFound, "page %q not found", id)
}

// RenamePage changes a page's display name.
func (d *Document) RenamePage(id, name string) error {
	for _, p := range d.pages {
		if p.id == id {
			p.name = name
			return nil
		}
	}
	return derrors.New(derrors.ErrCodePageNotFound, "page %q not found", id)
}

// DeletePage discards a page with all its cells and layers. The last
// remaining page cannot be deleted. If the active page is removed, the
// first remaining page becomes active.
func (d *Document) DeletePage(id string) error {
	idx := -1
	for i, p := range d.pages {
		if p.id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return derrors.New(derrors.ErrCodePageNotFound, "page %q not found", id)
	}
	if len(d.pages) == 1 {
		return derrors.New(derrors.ErrCodeCannotDeleteLastPage, "cannot delete the last remaining page")
	}
	d.pages = append(d.pages[:idx], d.pages[idx+1:]...)
	switch {
	case d.active == idx:
		d.active = 0
	case d.active > idx:
		d.active--
	}
	return nil
}

// =============================================================================
// Layers
// =============================================================================

// AddLayer creates a layer on the active page. An empty name defaults to
// "Layer <id>". The new layer does not become active.
func (d *Document) AddLayer(name string) Layer {
	p := d.page()
	id := p.seq.Next()
	if name == "" {
		name = "Layer " + id
	}
	l := Layer{ID: id, Name: name}
	p.layers = append(p.layers, l)
	return l
}

// ListLayers returns the active page's layers in order, flagging the
// active one.
func (d *Document) ListLayers() []Layer {
	p := d.page()
	out := make([]Layer, len(p.layers))
	for i, l := range p.layers {
		out[i] = l
		out[i].Active = l.ID == p.activeLayer
	}
	return out
}

// SetActiveLayer switches the layer newly created cells default to.
func (d *Document) SetActiveLayer(id string) error {
	p := d.page()
	if _, ok := p.layer(id); !ok {
		return derrors.New(derrors.ErrCodeLayerNotFound, "layer %q not found", id)
	}
	p.activeLayer = id
	return nil
}

// MoveCellToLayer reparents a cell to a layer. A cell leaving a group is
// removed from that group's children list.
func (d *Document) MoveCellToLayer(cellID, layerID string) error {
	p := d.page()
	c, ok := p.cell(cellID)
	if !ok {
		return derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", cellID)
	}
	if _, ok := p.layer(layerID); !ok {
		return derrors.New(derrors.ErrCodeLayerNotFound, "layer %q not found", layerID)
	}
	if parent, ok := p.cell(c.Parent); ok && parent.Group {
		parent.removeChild(cellID)
	}
	c.Parent = layerID
	return nil
}

// DeleteLayer removes a custom layer and every cell parented to it,
// cascading through edges the usual way. The default layer cannot be
// deleted. If the deleted layer was active, the default layer becomes
// active again.
func (d *Document) DeleteLayer(id string) error {
	p := d.page()
	if id == DefaultLayerID {
		return derrors.New(derrors.ErrCodeCannotDeleteDefaultLayer, "the default layer cannot be deleted")
	}
	idx := -1
	for i := range p.layers {
		if p.layers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return derrors.New(derrors.ErrCodeLayerNotFound, "layer %q not found", id)
	}

	// Snapshot first: cascades mutate the order slice while we walk it.
	var doomed []string
	for _, cid := range p.order {
		if p.cells[cid].Parent == id {
			doomed = append(doomed, cid)
		}
	}
	for _, cid := range doomed {
		if _, ok := p.cells[cid]; ok {
			_, _ = d.DeleteCell(cid)
		}
	}

	p.layers = append(p.layers[:idx], p.layers[idx+1:]...)
	if p.activeLayer == id {
		p.activeLayer = DefaultLayerID
	}
	return nil
}

// =============================================================================
// Vertices and edges
// =============================================================================

// VertexProps describes a vertex to create. Width and Height are optional;
// absent values use the documented defaults and present values are clamped
// to the minimum size, never rejected.
type VertexProps struct {
	Value  string   `json:"value,omitempty"`
	Style  string   `json:"style,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Parent string   `json:"parent,omitempty"` // layer or group id; empty means the active layer
}

// EdgeProps describes an edge to create. Both terminals must exist at
// call time.
type EdgeProps struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  string `json:"value,omitempty"`
	Style  string `json:"style,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// resolveParent maps a requested parent to a valid layer or group id.
func (p *page) resolveParent(requested string) (string, error) {
	if requested == "" {
		return p.activeLayer, nil
	}
	if _, ok := p.layer(requested); ok {
		return requested, nil
	}
	if c, ok := p.cell(requested); ok {
		if c.Group {
			return requested, nil
		}
		return "", derrors.New(derrors.ErrCodeNotAGroup, "cell %q is not a group", requested)
	}
	return "", derrors.New(derrors.ErrCodeLayerNotFound, "layer %q not found", requested)
}

// newVertex builds a vertex cell without inserting it.
func newVertex(id, parent string, props VertexProps) *Cell {
	style := props.Style
	if style == "" {
		style = DefaultVertexStyle
	}
	return &Cell{
		ID:    id,
		Kind:  KindVertex,
		Value: props.Value,
		Style: style,
		Geometry: &Geometry{
			X:      props.X,
			Y:      props.Y,
			Width:  sizeOrDefault(props.Width, DefaultVertexWidth),
			Height: sizeOrDefault(props.Height, DefaultVertexHeight),
		},
		Parent: parent,
	}
}

// newEdge builds an edge cell without inserting it. Edges carry no
// absolute geometry.
func newEdge(id, parent, source, target, value, style string) *Cell {
	if style == "" {
		style = DefaultEdgeStyle
	}
	return &Cell{
		ID:     id,
		Kind:   KindEdge,
		Value:  value,
		Style:  style,
		Source: source,
		Target: target,
		Parent: parent,
	}
}

// AddVertex creates a vertex on the active page and returns a copy of it.
func (d *Document) AddVertex(props VertexProps) (*Cell, error) {
	p := d.page()
	parent, err := p.resolveParent(props.Parent)
	if err != nil {
		return nil, err
	}
	c := newVertex(p.seq.Next(), parent, props)
	p.insert(c)
	return c.clone(), nil
}

// AddEdge creates an edge between two existing cells. Either terminal may
// itself be an edge.
func (d *Document) AddEdge(props EdgeProps) (*Cell, error) {
	p := d.page()
	if _, ok := p.cell(props.Source); !ok {
		return nil, derrors.New(derrors.ErrCodeSourceNotFound, "source cell %q not found", props.Source)
	}
	if _, ok := p.cell(props.Target); !ok {
		return nil, derrors.New(derrors.ErrCodeTargetNotFound, "target cell %q not found", props.Target)
	}
	parent, err := p.resolveParent(props.Parent)
	if err != nil {
		return nil, err
	}
	c := newEdge(p.seq.Next(), parent, props.Source, props.Target, props.Value, props.Style)
	p.insert(c)
	return c.clone(), nil
}

// VertexPatch is a partial update for a vertex. Only present fields are
// applied; an omitted field never clears anything.
type VertexPatch struct {
	Value  *string  `json:"value,omitempty"`
	Style  *string  `json:"style,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// EdgePatch is a partial update for an edge.
type EdgePatch struct {
	Value  *string `json:"value,omitempty"`
	Style  *string `json:"style,omitempty"`
	Source *string `json:"source,omitempty"`
	Target *string `json:"target,omitempty"`
}

// EditVertex applies a patch to a vertex and returns a copy of the result.
func (d *Document) EditVertex(id string, patch VertexPatch) (*Cell, error) {
	p := d.page()
	c, ok := p.cell(id)
	if !ok {
		return nil, derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", id)
	}
	if !c.IsVertex() {
		return nil, derrors.New(derrors.ErrCodeWrongCellType, "cell %q is an edge, not a vertex", id)
	}
	if patch.Value != nil {
		c.Value = *patch.Value
	}
	if patch.Style != nil {
		c.Style = *patch.Style
	}
	if patch.X != nil {
		c.Geometry.X = *patch.X
	}
	if patch.Y != nil {
		c.Geometry.Y = *patch.Y
	}
	if patch.Width != nil {
		c.Geometry.Width = clampSize(*patch.Width)
	}
	if patch.Height != nil {
		c.Geometry.Height = clampSize(*patch.Height)
	}
	return c.clone(), nil
}

// EditEdge applies a patch to an edge and returns a copy of the result.
//
// Terminal reassignment is validated in order: a missing new source fails
// with SOURCE_NOT_FOUND before anything is applied, but once the source
// change has been committed a missing new target fails with
// TARGET_NOT_FOUND without rolling the source back. Callers relying on
// atomic terminal swaps must re-read the edge after a failure.
func (d *Document) EditEdge(id string, patch EdgePatch) (*Cell, error) {
	p := d.page()
	c, ok := p.cell(id)
	if !ok {
		return nil, derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", id)
	}
	if !c.IsEdge() {
		return nil, derrors.New(derrors.ErrCodeWrongCellType, "cell %q is a vertex, not an edge", id)
	}
	if patch.Source != nil {
		if _, ok := p.cell(*patch.Source); !ok {
			return nil, derrors.New(derrors.ErrCodeSourceNotFound, "source cell %q not found", *patch.Source)
		}
	}
	if patch.Value != nil {
		c.Value = *patch.Value
	}
	if patch.Style != nil {
		c.Style = *patch.Style
	}
	if patch.Source != nil {
		c.Source = *patch.Source
	}
	if patch.Target != nil {
		if _, ok := p.cell(*patch.Target); !ok {
			return nil, derrors.New(derrors.ErrCodeTargetNotFound, "target cell %q not found", *patch.Target)
		}
		c.Target = *patch.Target
	}
	return c.clone(), nil
}

// DeleteCell removes a cell. Deleting a vertex cascades to every edge that
// references it as source or target; the returned slice lists the ids of
// those edges (each at most once). Deleting an edge removes only the edge.
// Deleting a group removes the group cell but not its children; they keep
// the group's former id as parent until explicitly reassigned.
func (d *Document) DeleteCell(id string) ([]string, error) {
	p := d.page()
	c, ok := p.cell(id)
	if !ok {
		return nil, derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", id)
	}

	var removed []string
	if c.IsVertex() {
		for _, oid := range p.order {
			o := p.cells[oid]
			if o.IsEdge() && (o.Source == id || o.Target == id) {
				removed = append(removed, oid)
			}
		}
		for _, eid := range removed {
			p.remove(eid)
		}
	}
	p.remove(id)
	return removed, nil
}

// ListCells returns copies of the active page's cells in insertion order.
func (d *Document) ListCells() []Cell {
	p := d.page()
	out := make([]Cell, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, *p.cells[id].clone())
	}
	return out
}

// GetCell returns a copy of a single cell.
func (d *Document) GetCell(id string) (*Cell, error) {
	c, ok := d.page().cell(id)
	if !ok {
		return nil, derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", id)
	}
	return c.clone(), nil
}
