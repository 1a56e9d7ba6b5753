package diagram

import (
	derrors "github.com/drawdeck/drawdeck/pkg/errors"
	"github.com/drawdeck/drawdeck/pkg/mxstyle"
)

// GroupProps describes a container vertex to create.
type GroupProps struct {
	Value  string   `json:"value,omitempty"`
	Style  string   `json:"style,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Parent string   `json:"parent,omitempty"`
}

// CreateGroup allocates a vertex with the group flag set and an empty
// children list. The container style token is guaranteed to be present
// exactly once: a caller-supplied style already containing it is left
// alone, anything else gets it appended.
func (d *Document) CreateGroup(props GroupProps) (*Cell, error) {
	p := d.page()
	parent, err := p.resolveParent(props.Parent)
	if err != nil {
		return nil, err
	}
	c := &Cell{
		ID:    p.seq.Next(),
		Kind:  KindVertex,
		Value: props.Value,
		Style: mxstyle.EnsureToken(props.Style, GroupStyleToken),
		Geometry: &Geometry{
			X:      props.X,
			Y:      props.Y,
			Width:  sizeOrDefault(props.Width, DefaultGroupWidth),
			Height: sizeOrDefault(props.Height, DefaultGroupHeight),
		},
		Parent:   parent,
		Group:    true,
		Children: []string{},
	}
	p.insert(c)
	return c.clone(), nil
}

// AddCellToGroup reparents a cell into a group. Repeated calls are
// idempotent: the children list holds the cell at most once. A cell
// already in another group is moved, not duplicated.
func (d *Document) AddCellToGroup(cellID, groupID string) error {
	p := d.page()
	c, ok := p.cell(cellID)
	if !ok {
		return derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", cellID)
	}
	g, ok := p.cell(groupID)
	if !ok {
		return derrors.New(derrors.ErrCodeGroupNotFound, "group %q not found", groupID)
	}
	if !g.Group {
		return derrors.New(derrors.ErrCodeNotAGroup, "cell %q is not a group", groupID)
	}
	if cellID == groupID {
		return derrors.New(derrors.ErrCodeSelfReference, "cell %q cannot be its own group", cellID)
	}
	if prev, ok := p.cell(c.Parent); ok && prev.Group && prev.ID != groupID {
		prev.removeChild(cellID)
	}
	c.Parent = groupID
	g.appendChild(cellID)
	return nil
}

// RemoveCellFromGroup detaches a cell from its group and reparents it to
// the active layer.
func (d *Document) RemoveCellFromGroup(cellID string) error {
	p := d.page()
	c, ok := p.cell(cellID)
	if !ok {
		return derrors.New(derrors.ErrCodeCellNotFound, "cell %q not found", cellID)
	}
	g, ok := p.cell(c.Parent)
	if !ok || !g.Group {
		return derrors.New(derrors.ErrCodeNotInGroup, "cell %q is not in a group", cellID)
	}
	g.removeChild(cellID)
	c.Parent = p.activeLayer
	return nil
}

// ListGroupChildren resolves a group's children against the live graph,
// silently dropping ids whose cell no longer exists.
func (d *Document) ListGroupChildren(groupID string) ([]Cell, error) {
	p := d.page()
	g, ok := p.cell(groupID)
	if !ok {
		return nil, derrors.New(derrors.ErrCodeGroupNotFound, "group %q not found", groupID)
	}
	if !g.Group {
		return nil, derrors.New(derrors.ErrCodeNotAGroup, "cell %q is not a group", groupID)
	}
	out := make([]Cell, 0, len(g.Children))
	for _, id := range g.Children {
		if c, ok := p.cell(id); ok {
			out = append(out, *c.clone())
		}
	}
	return out, nil
}
