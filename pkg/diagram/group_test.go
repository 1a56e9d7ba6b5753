package diagram

import (
	"strings"
	"testing"

	derrors "github.com/drawdeck/drawdeck/pkg/errors"
)

func TestCreateGroup(t *testing.T) {
	d := New()
	g, err := d.CreateGroup(GroupProps{Value: "cluster"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if !g.Group {
		t.Error("group flag not set")
	}
	if g.Children == nil || len(g.Children) != 0 {
		t.Errorf("children = %v, want empty non-nil list", g.Children)
	}
	if g.Geometry.Width != DefaultGroupWidth || g.Geometry.Height != DefaultGroupHeight {
		t.Errorf("geometry = %+v, want group defaults", g.Geometry)
	}
	if !strings.Contains(g.Style, GroupStyleToken) {
		t.Errorf("style %q missing container token", g.Style)
	}

	// A style that already carries the token is not doubled up.
	g2, _ := d.CreateGroup(GroupProps{Style: "group;fillColor=#dae8fc;"})
	if n := strings.Count(g2.Style, GroupStyleToken); n != 1 {
		t.Errorf("token appears %d times in %q, want 1", n, g2.Style)
	}
}

func TestAddCellToGroup(t *testing.T) {
	d := New()
	g, _ := d.CreateGroup(GroupProps{})
	c, _ := d.AddVertex(VertexProps{})

	if err := d.AddCellToGroup(c.ID, g.ID); err != nil {
		t.Fatalf("AddCellToGroup: %v", err)
	}
	got, _ := d.GetCell(c.ID)
	if got.Parent != g.ID {
		t.Errorf("parent = %q, want %q", got.Parent, g.ID)
	}

	// Repeating the call must not duplicate the membership.
	if err := d.AddCellToGroup(c.ID, g.ID); err != nil {
		t.Fatalf("repeat AddCellToGroup: %v", err)
	}
	children, _ := d.ListGroupChildren(g.ID)
	if len(children) != 1 {
		t.Errorf("children = %d, want 1 after repeated add", len(children))
	}
}

func TestAddCellToGroupErrors(t *testing.T) {
	d := New()
	g, _ := d.CreateGroup(GroupProps{})
	plain, _ := d.AddVertex(VertexProps{})

	tests := []struct {
		name    string
		cellID  string
		groupID string
		code    derrors.Code
	}{
		{"missing cell", "nope", g.ID, derrors.ErrCodeCellNotFound},
		{"missing group", plain.ID, "nope", derrors.ErrCodeGroupNotFound},
		{"target not a group", g.ID, plain.ID, derrors.ErrCodeNotAGroup},
		{"group into itself", g.ID, g.ID, derrors.ErrCodeSelfReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.AddCellToGroup(tt.cellID, tt.groupID); !derrors.Is(err, tt.code) {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestMoveBetweenGroups(t *testing.T) {
	d := New()
	g1, _ := d.CreateGroup(GroupProps{})
	g2, _ := d.CreateGroup(GroupProps{})
	c, _ := d.AddVertex(VertexProps{})

	d.AddCellToGroup(c.ID, g1.ID)
	if err := d.AddCellToGroup(c.ID, g2.ID); err != nil {
		t.Fatalf("move to second group: %v", err)
	}

	first, _ := d.ListGroupChildren(g1.ID)
	if len(first) != 0 {
		t.Errorf("old group still lists %d children", len(first))
	}
	second, _ := d.ListGroupChildren(g2.ID)
	if len(second) != 1 || second[0].ID != c.ID {
		t.Errorf("new group children = %v", second)
	}
}

func TestRemoveCellFromGroup(t *testing.T) {
	d := New()
	g, _ := d.CreateGroup(GroupProps{})
	c, _ := d.AddVertex(VertexProps{})
	d.AddCellToGroup(c.ID, g.ID)

	if err := d.RemoveCellFromGroup(c.ID); err != nil {
		t.Fatalf("RemoveCellFromGroup: %v", err)
	}
	got, _ := d.GetCell(c.ID)
	if got.Parent != DefaultLayerID {
		t.Errorf("parent = %q, want active layer", got.Parent)
	}
	children, _ := d.ListGroupChildren(g.ID)
	if len(children) != 0 {
		t.Errorf("group still lists %d children", len(children))
	}

	if err := d.RemoveCellFromGroup(c.ID); !derrors.Is(err, derrors.ErrCodeNotInGroup) {
		t.Errorf("second removal: got %v, want NOT_IN_GROUP", err)
	}
	if err := d.RemoveCellFromGroup("nope"); !derrors.Is(err, derrors.ErrCodeCellNotFound) {
		t.Errorf("got %v, want CELL_NOT_FOUND", err)
	}
}

// Deleting a group removes only the group cell. The children survive with
// their parent pointer still naming the deleted group, and listing the
// departed group fails rather than resolving stale state.
func TestDeleteGroupOrphansChildren(t *testing.T) {
	d := New()
	g, _ := d.CreateGroup(GroupProps{})
	c, _ := d.AddVertex(VertexProps{})
	d.AddCellToGroup(c.ID, g.ID)

	if _, err := d.DeleteCell(g.ID); err != nil {
		t.Fatalf("DeleteCell: %v", err)
	}
	got, err := d.GetCell(c.ID)
	if err != nil {
		t.Fatal("child must survive group deletion")
	}
	if got.Parent != g.ID {
		t.Errorf("orphan parent = %q, want former group id %q", got.Parent, g.ID)
	}
	if _, err := d.ListGroupChildren(g.ID); !derrors.Is(err, derrors.ErrCodeGroupNotFound) {
		t.Errorf("got %v, want GROUP_NOT_FOUND", err)
	}
}

func TestListGroupChildrenErrors(t *testing.T) {
	d := New()
	plain, _ := d.AddVertex(VertexProps{})

	if _, err := d.ListGroupChildren("nope"); !derrors.Is(err, derrors.ErrCodeGroupNotFound) {
		t.Errorf("got %v, want GROUP_NOT_FOUND", err)
	}
	if _, err := d.ListGroupChildren(plain.ID); !derrors.Is(err, derrors.ErrCodeNotAGroup) {
		t.Errorf("got %v, want NOT_A_GROUP", err)
	}
}

func TestCreateCellInsideGroupViaParent(t *testing.T) {
	d := New()
	g, _ := d.CreateGroup(GroupProps{})

	c, err := d.AddVertex(VertexProps{Parent: g.ID})
	if err != nil {
		t.Fatalf("AddVertex with group parent: %v", err)
	}
	children, _ := d.ListGroupChildren(g.ID)
	if len(children) != 1 || children[0].ID != c.ID {
		t.Errorf("children = %v, want the new vertex", children)
	}

	plain, _ := d.AddVertex(VertexProps{})
	if _, err := d.AddVertex(VertexProps{Parent: plain.ID}); !derrors.Is(err, derrors.ErrCodeNotAGroup) {
		t.Errorf("non-group parent: got %v, want NOT_A_GROUP", err)
	}
	if _, err := d.AddVertex(VertexProps{Parent: "nope"}); !derrors.Is(err, derrors.ErrCodeLayerNotFound) {
		t.Errorf("unknown parent: got %v, want LAYER_NOT_FOUND", err)
	}
}
