package diagram

// Kind distinguishes the two cell flavors of the graph model.
type Kind string

const (
	// KindVertex is a box-like cell with geometry.
	KindVertex Kind = "vertex"
	// KindEdge is a connector between two cells. Edges carry no absolute
	// geometry; their position is relative to their terminals.
	KindEdge Kind = "edge"
)

// Well-known identifiers mirrored from the interchange format.
const (
	// RootCellID is the invisible root every layer hangs off.
	RootCellID = "0"
	// DefaultLayerID is the layer every page starts with. It cannot be
	// deleted and is the parent for cells created without an explicit one.
	DefaultLayerID = "1"
)

// Documented defaults for cells created without explicit values.
const (
	DefaultVertexStyle = "rounded=0;whiteSpace=wrap;html=1;"
	DefaultEdgeStyle   = "edgeStyle=orthogonalEdgeStyle;rounded=0;orthogonalLoop=1;jettySize=auto;html=1;"

	DefaultVertexWidth  = 120.0
	DefaultVertexHeight = 60.0
	DefaultGroupWidth   = 200.0
	DefaultGroupHeight  = 200.0

	// MinVertexSize is the smallest width or height a vertex may have.
	// Zero and negative dimensions are clamped, never rejected.
	MinVertexSize = 1.0
)

// GroupStyleToken is the bare style token marking a vertex as a container.
// CreateGroup guarantees it is present exactly once in a group's style.
const GroupStyleToken = "group"

// Geometry is the position and size of a vertex.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Cell is a single entity in a page's graph: a vertex or an edge.
// A vertex with Group set is a container; its Children list and each
// child's Parent pointer are kept mutually consistent by the document.
type Cell struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Value    string    `json:"value,omitempty"`
	Style    string    `json:"style,omitempty"`
	Geometry *Geometry `json:"geometry,omitempty"` // vertices only
	Source   string    `json:"source,omitempty"`   // edges only, may be empty
	Target   string    `json:"target,omitempty"`   // edges only, may be empty
	Parent   string    `json:"parent,omitempty"`   // layer or group id
	Group    bool      `json:"group,omitempty"`
	Children []string  `json:"children,omitempty"` // groups only, ordered
}

// IsVertex reports whether the cell is a vertex.
func (c *Cell) IsVertex() bool { return c.Kind == KindVertex }

// IsEdge reports whether the cell is an edge.
func (c *Cell) IsEdge() bool { return c.Kind == KindEdge }

// clone returns a deep copy so callers can never mutate graph internals.
func (c *Cell) clone() *Cell {
	cp := *c
	if c.Geometry != nil {
		g := *c.Geometry
		cp.Geometry = &g
	}
	if c.Children != nil {
		// append would collapse an empty list to nil; groups keep a
		// non-nil children list.
		cp.Children = make([]string, len(c.Children))
		copy(cp.Children, c.Children)
	}
	return &cp
}

// clampSize enforces the minimum vertex dimension.
func clampSize(v float64) float64 {
	if v < MinVertexSize {
		return MinVertexSize
	}
	return v
}

// sizeOrDefault resolves an optional dimension: nil means the documented
// default, anything else is clamped to the minimum.
func sizeOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return clampSize(*v)
}
