package diagram

// Bounds is the bounding box of all positioned vertices on a page.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Stats is a read-only summary of the active page and the document,
// computed on demand and never cached.
type Stats struct {
	TotalCells   int            `json:"total_cells"`
	Vertices     int            `json:"vertices"`
	Edges        int            `json:"edges"`
	Groups       int            `json:"groups"`
	Layers       int            `json:"layers"`
	CellsByLayer map[string]int `json:"cells_by_layer"`
	WithText     int            `json:"with_text"`
	WithoutText  int            `json:"without_text"`
	Bounds       *Bounds        `json:"bounds,omitempty"`
	Pages        int            `json:"pages"`
	ActivePageID string         `json:"active_page_id"`
}

// Stats computes the statistics snapshot for the active page.
func (d *Document) Stats() Stats {
	p := d.page()
	s := Stats{
		Layers:       len(p.layers),
		CellsByLayer: make(map[string]int, len(p.layers)),
		Pages:        len(d.pages),
		ActivePageID: p.id,
	}
	for _, l := range p.layers {
		s.CellsByLayer[l.ID] = 0
	}

	var bounds *Bounds
	for _, id := range p.order {
		c := p.cells[id]
		s.TotalCells++
		if c.IsEdge() {
			s.Edges++
		} else {
			s.Vertices++
			if c.Group {
				s.Groups++
			}
		}
		if c.Value != "" {
			s.WithText++
		} else {
			s.WithoutText++
		}
		s.CellsByLayer[p.layerOf(c)]++

		if c.IsVertex() && c.Geometry != nil {
			g := c.Geometry
			if bounds == nil {
				bounds = &Bounds{MinX: g.X, MinY: g.Y, MaxX: g.X + g.Width, MaxY: g.Y + g.Height}
				continue
			}
			bounds.MinX = min(bounds.MinX, g.X)
			bounds.MinY = min(bounds.MinY, g.Y)
			bounds.MaxX = max(bounds.MaxX, g.X+g.Width)
			bounds.MaxY = max(bounds.MaxY, g.Y+g.Height)
		}
	}
	s.Bounds = bounds
	return s
}

// layerOf resolves a cell's parent chain to a layer id. Orphans (children
// of a deleted group) fall back to their direct parent id.
func (p *page) layerOf(c *Cell) string {
	cur := c
	for range len(p.cells) + 1 {
		if _, ok := p.layer(cur.Parent); ok {
			return cur.Parent
		}
		next, ok := p.cells[cur.Parent]
		if !ok {
			return c.Parent
		}
		cur = next
	}
	return c.Parent
}
