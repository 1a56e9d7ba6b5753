package shapes

// builtin is the shape set available without any remote index. Styles are
// the stock mxGraph styles the desktop application assigns from its shape
// palette.
var builtin = []Shape{
	{
		Name:        "rectangle",
		Category:    "basic",
		Style:       "rounded=0;whiteSpace=wrap;html=1;",
		Aliases:     []string{"box", "rect"},
		Description: "Plain rectangle",
	},
	{
		Name:        "rounded-rectangle",
		Category:    "basic",
		Style:       "rounded=1;whiteSpace=wrap;html=1;",
		Aliases:     []string{"rounded"},
		Description: "Rectangle with rounded corners",
	},
	{
		Name:        "ellipse",
		Category:    "basic",
		Style:       "ellipse;whiteSpace=wrap;html=1;",
		Aliases:     []string{"oval", "circle"},
		Description: "Ellipse or circle",
	},
	{
		Name:        "triangle",
		Category:    "basic",
		Style:       "triangle;whiteSpace=wrap;html=1;",
		Description: "Isoceles triangle pointing right",
	},
	{
		Name:        "text",
		Category:    "basic",
		Style:       "text;html=1;align=center;verticalAlign=middle;resizable=0;points=[];autosize=1;",
		Aliases:     []string{"label"},
		Description: "Borderless text label",
	},
	{
		Name:        "diamond",
		Category:    "flowchart",
		Style:       "rhombus;whiteSpace=wrap;html=1;",
		Aliases:     []string{"rhombus", "decision"},
		Description: "Decision diamond",
	},
	{
		Name:        "process",
		Category:    "flowchart",
		Style:       "shape=process;whiteSpace=wrap;html=1;backgroundOutline=1;",
		Aliases:     []string{"subroutine"},
		Description: "Predefined process",
	},
	{
		Name:        "parallelogram",
		Category:    "flowchart",
		Style:       "shape=parallelogram;perimeter=parallelogramPerimeter;whiteSpace=wrap;html=1;fixedSize=1;",
		Aliases:     []string{"data", "io"},
		Description: "Data input/output",
	},
	{
		Name:        "hexagon",
		Category:    "flowchart",
		Style:       "shape=hexagon;perimeter=hexagonPerimeter2;whiteSpace=wrap;html=1;fixedSize=1;",
		Aliases:     []string{"preparation"},
		Description: "Preparation step",
	},
	{
		Name:        "document",
		Category:    "flowchart",
		Style:       "shape=document;whiteSpace=wrap;html=1;boundedLbl=1;",
		Description: "Document with wavy bottom edge",
	},
	{
		Name:        "cylinder",
		Category:    "infrastructure",
		Style:       "shape=cylinder3;whiteSpace=wrap;html=1;boundedLbl=1;backgroundOutline=1;size=15;",
		Aliases:     []string{"database", "db"},
		Description: "Database cylinder",
	},
	{
		Name:        "cloud",
		Category:    "infrastructure",
		Style:       "ellipse;shape=cloud;whiteSpace=wrap;html=1;",
		Description: "Cloud outline",
	},
	{
		Name:        "actor",
		Category:    "uml",
		Style:       "shape=actor;whiteSpace=wrap;html=1;",
		Aliases:     []string{"person", "user"},
		Description: "Stick-figure actor",
	},
	{
		Name:        "note",
		Category:    "uml",
		Style:       "shape=note;whiteSpace=wrap;html=1;backgroundOutline=1;darkOpacity=0.05;",
		Aliases:     []string{"sticky"},
		Description: "Note with folded corner",
	},
	{
		Name:        "container",
		Category:    "uml",
		Style:       "rounded=0;whiteSpace=wrap;html=1;verticalAlign=top;group;",
		Description: "Labeled container for grouping",
	},
}
