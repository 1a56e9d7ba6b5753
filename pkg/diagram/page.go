package diagram

// Layer is a named, ordered visual partition of a page.
type Layer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active,omitempty"`
}

// PageInfo is the externally visible description of a page.
type PageInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active,omitempty"`
}

// page is one independent graph slice: cells, layers, and an identifier
// counter of its own. Switching the active page swaps which slice the
// document reads and writes; slices never interact.
type page struct {
	id   string
	name string

	cells map[string]*Cell
	order []string // insertion order, drives listing and export

	layers      []Layer
	activeLayer string

	seq *sequence
}

func newPage(id, name string) *page {
	return &page{
		id:          id,
		name:        name,
		cells:       make(map[string]*Cell),
		layers:      []Layer{{ID: DefaultLayerID, Name: "Background"}},
		activeLayer: DefaultLayerID,
		seq:         newSequence("", 2),
	}
}

func (p *page) cell(id string) (*Cell, bool) {
	c, ok := p.cells[id]
	return c, ok
}

// insert adds a cell under its preassigned id and records insertion order.
func (p *page) insert(c *Cell) {
	p.cells[c.ID] = c
	p.order = append(p.order, c.ID)
	if parent, ok := p.cells[c.Parent]; ok && parent.Group {
		parent.appendChild(c.ID)
	}
}

// remove deletes a cell and detaches it from its group, if any.
// It does not cascade; the document handles edge cascades.
func (p *page) remove(id string) {
	c, ok := p.cells[id]
	if !ok {
		return
	}
	if parent, ok := p.cells[c.Parent]; ok && parent.Group {
		parent.removeChild(id)
	}
	delete(p.cells, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *page) layer(id string) (*Layer, bool) {
	for i := range p.layers {
		if p.layers[i].ID == id {
			return &p.layers[i], true
		}
	}
	return nil, false
}

// appendChild records a group member, idempotently.
func (c *Cell) appendChild(id string) {
	for _, ch := range c.Children {
		if ch == id {
			return
		}
	}
	c.Children = append(c.Children, id)
}

func (c *Cell) removeChild(id string) {
	for i, ch := range c.Children {
		if ch == id {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			return
		}
	}
}
