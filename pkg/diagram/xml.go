package diagram

import (
	"encoding/xml"
	"strings"

	derrors "github.com/drawdeck/drawdeck/pkg/errors"
	"github.com/drawdeck/drawdeck/pkg/mxstyle"
)

// Wire structs for the mxfile interchange dialect. The encoder handles
// entity-reference escaping for all attribute values.

type mxFile struct {
	XMLName  xml.Name    `xml:"mxfile"`
	Host     string      `xml:"host,attr,omitempty"`
	Agent    string      `xml:"agent,attr,omitempty"`
	Version  string      `xml:"version,attr,omitempty"`
	Diagrams []mxDiagram `xml:"diagram"`
}

// mxDiagram holds either a plain mxGraphModel subtree or, for the
// compressed variant, a base64 blob as character data.
type mxDiagram struct {
	ID      string        `xml:"id,attr,omitempty"`
	Name    string        `xml:"name,attr,omitempty"`
	Content string        `xml:",chardata"`
	Model   *mxGraphModel `xml:"mxGraphModel"`
}

type mxGraphModel struct {
	XMLName    xml.Name `xml:"mxGraphModel"`
	Dx         int      `xml:"dx,attr,omitempty"`
	Dy         int      `xml:"dy,attr,omitempty"`
	Grid       int      `xml:"grid,attr"`
	GridSize   int      `xml:"gridSize,attr,omitempty"`
	Guides     int      `xml:"guides,attr"`
	Tooltips   int      `xml:"tooltips,attr"`
	Connect    int      `xml:"connect,attr"`
	Arrows     int      `xml:"arrows,attr"`
	Fold       int      `xml:"fold,attr"`
	Page       int      `xml:"page,attr"`
	PageScale  float64  `xml:"pageScale,attr,omitempty"`
	PageWidth  int      `xml:"pageWidth,attr,omitempty"`
	PageHeight int      `xml:"pageHeight,attr,omitempty"`
	Root       mxRoot   `xml:"root"`
}

type mxRoot struct {
	Cells   []mxCell   `xml:"mxCell"`
	Objects []mxObject `xml:"object"`
}

type mxCell struct {
	ID       string      `xml:"id,attr,omitempty"`
	Value    string      `xml:"value,attr,omitempty"`
	Style    string      `xml:"style,attr,omitempty"`
	Vertex   string      `xml:"vertex,attr,omitempty"`
	Edge     string      `xml:"edge,attr,omitempty"`
	Parent   string      `xml:"parent,attr,omitempty"`
	Source   string      `xml:"source,attr,omitempty"`
	Target   string      `xml:"target,attr,omitempty"`
	Geometry *mxGeometry `xml:"mxGeometry"`
}

// mxObject is the legacy "wrapped cell" variant: a decorative outer
// element around a plain cell. Its own attributes win; the inner cell
// fills whatever the outer element lacks.
type mxObject struct {
	ID    string  `xml:"id,attr,omitempty"`
	Label string  `xml:"label,attr,omitempty"`
	Cell  *mxCell `xml:"mxCell"`
}

type mxGeometry struct {
	X        *float64 `xml:"x,attr,omitempty"`
	Y        *float64 `xml:"y,attr,omitempty"`
	Width    float64  `xml:"width,attr,omitempty"`
	Height   float64  `xml:"height,attr,omitempty"`
	Relative string   `xml:"relative,attr,omitempty"`
	As       string   `xml:"as,attr,omitempty"`
}

// =============================================================================
// Export
// =============================================================================

// ExportXML renders the whole document, one diagram block per page. With
// compressed set, each page's subtree is emitted in the deflate+base64
// form the desktop application produces.
func (d *Document) ExportXML(compressed bool) (string, error) {
	file := mxFile{Host: "Drawdeck", Agent: "drawdeck", Version: "1.0"}
	for _, p := range d.pages {
		diag := mxDiagram{ID: p.id, Name: p.name}
		model := buildModel(p)
		if compressed {
			raw, err := xml.Marshal(model)
			if err != nil {
				return "", derrors.Wrap(derrors.ErrCodeInternal, err, "marshal page %q", p.id)
			}
			blob, err := compressModel(string(raw))
			if err != nil {
				return "", derrors.Wrap(derrors.ErrCodeInternal, err, "compress page %q", p.id)
			}
			diag.Content = blob
		} else {
			diag.Model = model
		}
		file.Diagrams = append(file.Diagrams, diag)
	}

	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", derrors.Wrap(derrors.ErrCodeInternal, err, "marshal document")
	}
	return xml.Header + string(out), nil
}

// buildModel renders one page into the wire form: the fixed root cell,
// the fixed default layer, extra layers, then cells in insertion order.
func buildModel(p *page) *mxGraphModel {
	model := &mxGraphModel{
		Dx:         800,
		Dy:         600,
		Grid:       1,
		GridSize:   10,
		Guides:     1,
		Tooltips:   1,
		Connect:    1,
		Arrows:     1,
		Fold:       1,
		Page:       1,
		PageScale:  1,
		PageWidth:  850,
		PageHeight: 1100,
	}

	model.Root.Cells = append(model.Root.Cells,
		mxCell{ID: RootCellID},
		mxCell{ID: DefaultLayerID, Parent: RootCellID},
	)
	for _, l := range p.layers {
		if l.ID == DefaultLayerID {
			continue
		}
		model.Root.Cells = append(model.Root.Cells, mxCell{ID: l.ID, Value: l.Name, Parent: RootCellID})
	}

	for _, id := range p.order {
		c := p.cells[id]
		wire := mxCell{
			ID:     c.ID,
			Value:  c.Value,
			Style:  c.Style,
			Parent: c.Parent,
		}
		if c.IsEdge() {
			wire.Edge = "1"
			wire.Source = c.Source
			wire.Target = c.Target
			wire.Geometry = &mxGeometry{Relative: "1", As: "geometry"}
		} else {
			wire.Vertex = "1"
			g := c.Geometry
			x, y := g.X, g.Y
			wire.Geometry = &mxGeometry{X: &x, Y: &y, Width: g.Width, Height: g.Height, As: "geometry"}
		}
		model.Root.Cells = append(model.Root.Cells, wire)
	}
	return model
}

// =============================================================================
// Import
// =============================================================================

// ImportXML replaces the document with the parsed input.
//
// Structural problems (empty input, missing mxfile root, malformed XML,
// an undecodable compressed block) are rejected before any mutation: the
// current document is preserved on failure. Within an accepted structure
// individual cells are handled leniently; a cell element without an id is
// skipped rather than treated as fatal.
func (d *Document) ImportXML(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return derrors.New(derrors.ErrCodeEmptyXML, "input is empty")
	}
	if !strings.Contains(trimmed, "<mxfile") {
		return derrors.New(derrors.ErrCodeInvalidXML, "input does not contain an mxfile root element")
	}

	var file mxFile
	if err := xml.Unmarshal([]byte(trimmed), &file); err != nil {
		return derrors.Wrap(derrors.ErrCodeInvalidXML, err, "parse mxfile")
	}

	// Build a replacement document first; the current one stays intact
	// until the whole input has been accepted.
	next := &Document{pageSeq: newSequence("page-", 1)}
	for i, diag := range file.Diagrams {
		model := diag.Model
		if model == nil || (len(model.Root.Cells) == 0 && len(model.Root.Objects) == 0) {
			content := strings.TrimSpace(diag.Content)
			if content != "" {
				decoded, err := decompressModel(content)
				if err != nil {
					return derrors.Wrap(derrors.ErrCodeInvalidXML, err, "decompress diagram %d", i)
				}
				model = &mxGraphModel{}
				if err := xml.Unmarshal([]byte(decoded), model); err != nil {
					return derrors.Wrap(derrors.ErrCodeInvalidXML, err, "parse diagram %d", i)
				}
			} else {
				model = &mxGraphModel{}
			}
		}

		id := diag.ID
		if id == "" {
			id = next.pageSeq.Next()
		} else {
			next.pageSeq.Advance(id)
		}
		name := diag.Name
		if name == "" {
			name = id
		}
		p := newPage(id, name)
		loadModel(p, model)
		next.pages = append(next.pages, p)
	}
	if len(next.pages) == 0 {
		next.pages = append(next.pages, newPage(next.pageSeq.Next(), "Page-1"))
	}

	*d = *next
	d.active = 0
	return nil
}

// loadModel populates a fresh page from one wire model.
func loadModel(p *page, model *mxGraphModel) {
	records := normalizeCells(model)

	for _, rec := range records {
		switch {
		case rec.ID == "":
			// Tolerated: a cell we cannot address is silently skipped.
			continue
		case rec.ID == RootCellID, rec.ID == DefaultLayerID:
			continue
		case rec.Parent == RootCellID && rec.Vertex != "1" && rec.Edge != "1":
			name := rec.Value
			if name == "" {
				name = rec.ID
			}
			p.layers = append(p.layers, Layer{ID: rec.ID, Name: name})
			p.seq.Advance(rec.ID)
		default:
			c := importCell(rec)
			p.cells[c.ID] = c
			p.order = append(p.order, c.ID)
			p.seq.Advance(c.ID)
		}
	}

	// Rebuild group children from parent pointers so the two stay
	// mutually consistent from the first read.
	for _, id := range p.order {
		c := p.cells[id]
		if g, ok := p.cells[c.Parent]; ok && g.Group {
			g.appendChild(id)
		}
	}
}

// normalizeCells unifies the plain and wrapped input shapes into one
// canonical record list before the rest of the parser runs.
func normalizeCells(model *mxGraphModel) []mxCell {
	records := make([]mxCell, 0, len(model.Root.Cells)+len(model.Root.Objects))
	records = append(records, model.Root.Cells...)
	for _, o := range model.Root.Objects {
		rec := mxCell{}
		if o.Cell != nil {
			rec = *o.Cell
		}
		if o.ID != "" {
			rec.ID = o.ID
		}
		if o.Label != "" {
			rec.Value = o.Label
		}
		records = append(records, rec)
	}
	return records
}

// importCell converts one wire record into a graph cell.
func importCell(rec mxCell) *Cell {
	parent := rec.Parent
	if parent == "" {
		parent = DefaultLayerID
	}

	if rec.Edge == "1" {
		return &Cell{
			ID:     rec.ID,
			Kind:   KindEdge,
			Value:  rec.Value,
			Style:  rec.Style,
			Source: rec.Source,
			Target: rec.Target,
			Parent: parent,
		}
	}

	geo := &Geometry{Width: DefaultVertexWidth, Height: DefaultVertexHeight}
	if g := rec.Geometry; g != nil {
		if g.X != nil {
			geo.X = *g.X
		}
		if g.Y != nil {
			geo.Y = *g.Y
		}
		geo.Width = clampSize(g.Width)
		geo.Height = clampSize(g.Height)
	}

	c := &Cell{
		ID:       rec.ID,
		Kind:     KindVertex,
		Value:    rec.Value,
		Style:    rec.Style,
		Geometry: geo,
		Parent:   parent,
	}
	if mxstyle.Parse(rec.Style).HasToken(GroupStyleToken) {
		c.Group = true
		c.Children = []string{}
	}
	return c
}
