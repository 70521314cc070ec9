package layout

import (
	"testing"

	"github.com/chrisuehlinger/stylekit/dom"
)

func TestDimensionsBoxCalculations(t *testing.T) {
	dims := Dimensions{
		Content: Rect{X: 10, Y: 10, Width: 100, Height: 50},
		Padding: EdgeSizes{Top: 5, Right: 5, Bottom: 5, Left: 5},
		Border:  EdgeSizes{Top: 2, Right: 2, Bottom: 2, Left: 2},
		Margin:  EdgeSizes{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}

	paddingBox := dims.PaddingBox()
	if paddingBox.X != 5 || paddingBox.Y != 5 {
		t.Errorf("PaddingBox position wrong: got (%v, %v), expected (5, 5)", paddingBox.X, paddingBox.Y)
	}
	if paddingBox.Width != 110 || paddingBox.Height != 60 {
		t.Errorf("PaddingBox size wrong: got (%v, %v), expected (110, 60)", paddingBox.Width, paddingBox.Height)
	}

	borderBox := dims.BorderBox()
	if borderBox.X != 3 || borderBox.Y != 3 {
		t.Errorf("BorderBox position wrong: got (%v, %v), expected (3, 3)", borderBox.X, borderBox.Y)
	}
	if borderBox.Width != 114 || borderBox.Height != 64 {
		t.Errorf("BorderBox size wrong: got (%v, %v), expected (114, 64)", borderBox.Width, borderBox.Height)
	}

	marginBox := dims.MarginBox()
	if marginBox.X != -7 || marginBox.Y != -7 {
		t.Errorf("MarginBox position wrong: got (%v, %v), expected (-7, -7)", marginBox.X, marginBox.Y)
	}
	if marginBox.Width != 134 || marginBox.Height != 84 {
		t.Errorf("MarginBox size wrong: got (%v, %v), expected (134, 84)", marginBox.Width, marginBox.Height)
	}
}

func parse(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseHTML(src)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	return doc
}

func TestLayoutBlockFlow(t *testing.T) {
	doc := parse(t, `<body style="margin: 8px">
<div id="a" style="height: 100px; padding: 10px; border-width: 2px"></div>
<div id="b" style="width: 50%; height: 40px; margin: 5px 20px"></div>
</body>`)
	Layout(doc, 800)

	body := doc.Body()
	bg := body.Geometry()
	if bg == nil {
		t.Fatal("Expected body geometry")
	}
	if bg.X != 8 || bg.Y != 8 || bg.ContentWidth != 784 {
		t.Errorf("Unexpected body box %+v", bg)
	}

	a := doc.GetElementById("a").Geometry()
	// content 784 - 2*10 - 2*2 = 760 wide
	if a.ContentWidth != 760 || a.Width != 784 || a.Height != 124 {
		t.Errorf("Unexpected #a box %+v", a)
	}
	if a.X != 8 || a.Y != 8 {
		t.Errorf("Unexpected #a position (%v, %v)", a.X, a.Y)
	}

	b := doc.GetElementById("b").Geometry()
	if b.ContentWidth != 392 || b.Height != 40 {
		t.Errorf("Unexpected #b size %+v", b)
	}
	// below #a (8 + 124) plus its own top margin
	if b.Y != 137 || b.X != 28 {
		t.Errorf("Unexpected #b position (%v, %v)", b.X, b.Y)
	}
	if b.MarginLeft != 20 || b.MarginTop != 5 {
		t.Errorf("Unexpected #b margins %+v", b)
	}

	// body height is the sum of its children's margin boxes
	if bg.ContentHeight != 124+50 {
		t.Errorf("Unexpected body height %v", bg.ContentHeight)
	}
}

func TestLayoutSkipsNonRendered(t *testing.T) {
	doc := parse(t, `<head><style>p{}</style></head><body>
<div id="hidden" style="display: none; height: 50px"><p id="inner" style="height: 10px"></p></div>
<div id="shown" style="height: 10px"></div></body>`)
	Layout(doc, 100)

	if g := doc.Head().Geometry(); g != nil {
		t.Errorf("Expected no geometry for head, got %+v", g)
	}
	if el := doc.GetElementById("inner"); el.OffsetHeight() != 0 {
		t.Errorf("Expected no box inside display:none, got %v", el.OffsetHeight())
	}
	if g := doc.GetElementById("shown").Geometry(); g.Y != 0 {
		t.Errorf("Expected hidden sibling to take no space, got y=%v", g.Y)
	}
}

func TestLayoutKeepsScroll(t *testing.T) {
	doc := parse(t, `<body><div style="height: 2000px"></div></body>`)
	doc.ScrollTo(0, 150)
	Layout(doc, 100)

	root := doc.DocumentElement()
	if root.ScrollTop() != 150 {
		t.Errorf("Expected scroll to survive layout, got %v", root.ScrollTop())
	}
	if root.OffsetHeight() != 2000 {
		t.Errorf("Unexpected root height %v", root.OffsetHeight())
	}
}

func TestLengthUnits(t *testing.T) {
	tests := []struct {
		in   string
		ref  float64
		want float64
		ok   bool
	}{
		{"10px", 0, 10, true},
		{"2em", 0, 32, true},
		{"25%", 200, 50, true},
		{"25%", 0, 0, false},
		{"auto", 100, 0, false},
		{"3vh", 100, 0, false},
		{"0", 0, 0, true},
	}
	for _, tt := range tests {
		got, ok := length(tt.in, tt.ref)
		if got != tt.want || ok != tt.ok {
			t.Errorf("length(%q, %v) = %v, %v; want %v, %v", tt.in, tt.ref, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLayoutRerunsAfterChanges(t *testing.T) {
	doc, err := dom.ParseHTML(`<body><div id="a" style="height: 10px"></div><div id="b" style="height: 5px"></div></body>`)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	Layout(doc, 200)
	a, b := doc.GetElementById("a"), doc.GetElementById("b")
	if got := b.GetBoundingClientRect().Top; got != 10 {
		t.Fatalf("Expected b at 10, got %v", got)
	}

	a.StyleDeclaration().SetProperty("height", "40px")
	if got := b.GetBoundingClientRect().Top; got != 40 {
		t.Errorf("Expected b at 40 after resize, got %v", got)
	}
	if got := a.Computed().GetPropertyValue("height"); got != "40px" {
		t.Errorf("Expected height 40px, got %q", got)
	}

	a.TokenList().Add("x")
	a.StyleDeclaration().SetProperty("display", "none")
	if got := b.GetBoundingClientRect().Top; got != 0 {
		t.Errorf("Expected b at 0 once a is hidden, got %v", got)
	}
	if got := a.OffsetHeight(); got != 0 {
		t.Errorf("Expected hidden a to have no box, got height %v", got)
	}

	c := doc.CreateElement("div")
	c.SetAttribute("style", "height: 7px")
	doc.Body().RemoveChild(a)
	doc.Body().AppendChild(c)
	if got := c.GetBoundingClientRect().Top; got != 5 {
		t.Errorf("Expected appended c at 5, got %v", got)
	}
}
