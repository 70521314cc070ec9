// Package layout assigns box geometry to the elements of a dom.Document.
//
// It implements normal block flow only: every rendered element is a block
// that fills its containing block's width (or its own width property) and
// stacks its children vertically. Margins do not collapse and there is no
// inline or flex layout. That is enough to give every element a meaningful
// bounding rect, offset box and client box.
package layout

import (
	"strings"

	"github.com/chrisuehlinger/stylekit/dom"
)

// DefaultFontSize is the pixel size of 1em.
const DefaultFontSize = 16.0

// Dimensions represents the dimensions of a layout box.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// Rect represents a rectangular area.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeSizes represents the sizes of edges (top, right, bottom, left).
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// PaddingBox returns the area covered by content and padding.
func (d *Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox returns the area covered by content, padding, and border.
func (d *Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox returns the area covered by content, padding, border, and margin.
func (d *Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// ExpandedBy returns a rectangle expanded by the given edge sizes.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// Horizontal returns Left + Right.
func (e EdgeSizes) Horizontal() float64 {
	return e.Left + e.Right
}

// nonRendered lists elements that never generate a box.
var nonRendered = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
	"meta": true, "link": true, "template": true,
}

// Layout lays out doc in a viewport of the given width and stores the result
// on every element with dom.Element.SetGeometry. Scroll offsets already set on
// elements are kept. Elements that generate no box get an empty geometry.
//
// Layout also installs itself on doc, so later changes to the tree, class
// lists or inline styles are laid out again before the next geometry read.
func Layout(doc *dom.Document, viewportWidth float64) {
	doc.SetLayout(func() { layoutDocument(doc, viewportWidth) })
	layoutDocument(doc, viewportWidth)
}

func layoutDocument(doc *dom.Document, viewportWidth float64) {
	root := doc.DocumentElement()
	if root == nil {
		return
	}
	viewport := Rect{Width: viewportWidth}
	layoutBlock(root, viewport, 0)
}

// layoutBlock lays out el inside the containing content rect cb with its
// margin box starting at y, and returns its dimensions.
func layoutBlock(el *dom.Element, cb Rect, y float64) Dimensions {
	style := el.StyleDeclaration()
	if nonRendered[el.LocalName()] || strings.TrimSpace(style.GetPropertyValue("display")) == "none" {
		clearGeometry(el)
		return Dimensions{}
	}

	var d Dimensions
	d.Margin = edges(style, "margin", "", cb.Width)
	d.Padding = edges(style, "padding", "", cb.Width)
	d.Border = edges(style, "border", "-width", cb.Width)

	if w, ok := length(style.GetPropertyValue("width"), cb.Width); ok {
		d.Content.Width = max(w, 0)
	} else {
		d.Content.Width = max(cb.Width-d.Margin.Horizontal()-d.Border.Horizontal()-d.Padding.Horizontal(), 0)
	}
	d.Content.X = cb.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = y + d.Margin.Top + d.Border.Top + d.Padding.Top

	cursor := d.Content.Y
	for _, child := range el.Children() {
		cd := layoutBlock(child, d.Content, cursor)
		cursor += cd.MarginBox().Height
	}

	if h, ok := length(style.GetPropertyValue("height"), cb.Height); ok {
		d.Content.Height = max(h, 0)
	} else {
		d.Content.Height = cursor - d.Content.Y
	}

	setGeometry(el, d)
	return d
}

func setGeometry(el *dom.Element, d Dimensions) {
	border := d.BorderBox()
	g := &dom.ElementGeometry{
		X: border.X, Y: border.Y, Width: border.Width, Height: border.Height,

		ContentWidth:  d.Content.Width,
		ContentHeight: d.Content.Height,

		PaddingTop: d.Padding.Top, PaddingRight: d.Padding.Right,
		PaddingBottom: d.Padding.Bottom, PaddingLeft: d.Padding.Left,
		BorderTop: d.Border.Top, BorderRight: d.Border.Right,
		BorderBottom: d.Border.Bottom, BorderLeft: d.Border.Left,
		MarginTop: d.Margin.Top, MarginRight: d.Margin.Right,
		MarginBottom: d.Margin.Bottom, MarginLeft: d.Margin.Left,
	}
	if old := el.Geometry(); old != nil {
		g.ScrollTop, g.ScrollLeft = old.ScrollTop, old.ScrollLeft
	}
	el.SetGeometry(g)
}

func clearGeometry(el *dom.Element) {
	el.Walk(func(e *dom.Element) {
		if g := e.Geometry(); g != nil {
			e.SetGeometry(&dom.ElementGeometry{ScrollTop: g.ScrollTop, ScrollLeft: g.ScrollLeft})
		}
	})
}

// edges resolves an edge property from its shorthand (1 to 4 values) and its
// per-side longhands, e.g. "margin" and "margin-top". suffix is appended to
// longhand names ("border-top" + "-width").
func edges(style *dom.CSSStyleDeclaration, prop, suffix string, ref float64) EdgeSizes {
	var v [4]float64 // top, right, bottom, left
	if sh := strings.Fields(style.GetPropertyValue(prop + suffix)); len(sh) > 0 && len(sh) <= 4 {
		var parsed [4]float64
		for i, f := range sh {
			parsed[i], _ = length(f, ref)
		}
		switch len(sh) {
		case 1:
			v = [4]float64{parsed[0], parsed[0], parsed[0], parsed[0]}
		case 2:
			v = [4]float64{parsed[0], parsed[1], parsed[0], parsed[1]}
		case 3:
			v = [4]float64{parsed[0], parsed[1], parsed[2], parsed[1]}
		case 4:
			v = parsed
		}
	}
	for i, side := range []string{"top", "right", "bottom", "left"} {
		if val := style.GetPropertyValue(prop + "-" + side + suffix); val != "" {
			v[i], _ = length(val, ref)
		}
	}
	return EdgeSizes{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
}

// length resolves a CSS length to pixels. Percentages resolve against ref and
// are auto when ref is zero.
// ok is false for auto and unsupported units.
func length(value string, ref float64) (float64, bool) {
	num, unit, ok := dom.ParseLength(value)
	if !ok {
		return 0, false
	}
	switch unit {
	case "", "px":
		return num, true
	case "em", "rem":
		return num * DefaultFontSize, true
	case "%":
		if ref == 0 {
			return 0, false
		}
		return num * ref / 100, true
	}
	return 0, false
}
