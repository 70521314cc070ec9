package dom

import (
	"strings"

	"github.com/chrisuehlinger/stylekit/css"
)

// attribute is a single name/value pair. Names are stored lowercased.
type attribute struct {
	name  string
	value string
}

// Element is an HTML element in an in-memory document. It carries the class
// list, inline style and layout geometry that css.Styler operates on.
type Element struct {
	tagName  string
	attrs    []attribute
	ownerDoc *Document
	parent   *Element
	children []*Element
	text     string

	classList *DOMTokenList
	style     *CSSStyleDeclaration
	geometry  *ElementGeometry
}

var _ css.Element = (*Element)(nil)

// Text returns the element's own text, e.g. the body of a <script>.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's own text.
func (e *Element) SetText(text string) {
	e.text = text
}

// TagName returns the upper-case tag name.
func (e *Element) TagName() string {
	return strings.ToUpper(e.tagName)
}

// LocalName returns the lower-case tag name.
func (e *Element) LocalName() string {
	return e.tagName
}

// OwnerDocument returns the document that created the element.
func (e *Element) OwnerDocument() *Document {
	return e.ownerDoc
}

// Id returns the id attribute.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	result := make([]*Element, len(e.children))
	copy(result, e.children)
	return result
}

// AppendChild appends child, detaching it from its previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.invalidate()
	return child
}

// RemoveChild detaches child if it is a child of e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.invalidate()
			return
		}
	}
}

// GetAttribute returns the value of the named attribute, or "".
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.name == name {
			return a.value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute. Setting "style" re-parses the inline style.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	e.setAttribute(name, value)
	if name == "style" && e.style != nil {
		e.style.RefreshFromAttribute()
	}
}

// RemoveAttribute removes an attribute.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	e.removeAttribute(name)
	if name == "style" && e.style != nil {
		e.style.RefreshFromAttribute()
	}
}

func (e *Element) setAttribute(name, value string) {
	if affectsLayout(name) {
		e.invalidate()
	}
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{name: name, value: value})
}

func (e *Element) removeAttribute(name string) {
	for i, a := range e.attrs {
		if a.name == name {
			if affectsLayout(name) {
				e.invalidate()
			}
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// affectsLayout reports whether changing the named attribute can move or
// resize boxes.
func affectsLayout(name string) bool {
	return name == "style" || name == "class"
}

func (e *Element) invalidate() {
	if doc := e.OwnerDocument(); doc != nil {
		doc.Invalidate()
	}
}

// layoutGeometry returns the geometry after bringing layout up to date.
func (e *Element) layoutGeometry() *ElementGeometry {
	if doc := e.OwnerDocument(); doc != nil {
		doc.Reflow()
	}
	return e.geometry
}

// TokenList returns the DOMTokenList backing the class attribute.
func (e *Element) TokenList() *DOMTokenList {
	if e.classList == nil {
		e.classList = newDOMTokenList(e, "class")
	}
	return e.classList
}

// StyleDeclaration returns the element's inline style declaration.
func (e *Element) StyleDeclaration() *CSSStyleDeclaration {
	if e.style == nil {
		e.style = NewCSSStyleDeclaration(e)
	}
	return e.style
}

// Computed returns the element's resolved style.
func (e *Element) Computed() *ComputedStyle {
	return &ComputedStyle{element: e}
}

// ClassList implements css.Element.
func (e *Element) ClassList() css.ClassList {
	return e.TokenList()
}

// Style implements css.Element.
func (e *Element) Style() css.InlineStyle {
	return e.StyleDeclaration()
}

// ComputedStyle implements css.Element.
func (e *Element) ComputedStyle() css.ComputedStyle {
	return e.Computed()
}

// Geometry returns the element's layout geometry, or nil before layout. A
// stale layout is recomputed first.
func (e *Element) Geometry() *ElementGeometry {
	return e.layoutGeometry()
}

// SetGeometry sets the element's layout geometry. It is called by the layout
// pass.
func (e *Element) SetGeometry(g *ElementGeometry) {
	e.geometry = g
}

// BoundingRect returns the element's border box in viewport coordinates: its
// document position less the document scroll offset. Before layout it is a
// zero-sized rect at the origin.
func (e *Element) BoundingRect() *DOMRect {
	geom := e.layoutGeometry()
	if geom == nil {
		return NewDOMRect(0, 0, 0, 0)
	}
	var scrollX, scrollY float64
	if doc := e.OwnerDocument(); doc != nil {
		scrollX, scrollY = doc.ScrollOffset()
	}
	return NewDOMRect(geom.X-scrollX, geom.Y-scrollY, geom.Width, geom.Height)
}

// GetBoundingClientRect implements css.Element.
func (e *Element) GetBoundingClientRect() css.Rect {
	r := e.BoundingRect()
	return css.Rect{Top: r.Top(), Right: r.Right(), Bottom: r.Bottom(), Left: r.Left()}
}

// OffsetWidth returns the layout width including padding and border.
func (e *Element) OffsetWidth() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.Width
}

// OffsetHeight returns the layout height including padding and border.
func (e *Element) OffsetHeight() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.Height
}

// ClientWidth returns the inner width (content + padding) without border.
func (e *Element) ClientWidth() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.ContentWidth + g.PaddingLeft + g.PaddingRight
}

// ClientHeight returns the inner height (content + padding) without border.
func (e *Element) ClientHeight() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.ContentHeight + g.PaddingTop + g.PaddingBottom
}

// ScrollTop returns the scroll offset from the top.
func (e *Element) ScrollTop() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.ScrollTop
}

// ScrollLeft returns the scroll offset from the left.
func (e *Element) ScrollLeft() float64 {
	g := e.layoutGeometry()
	if g == nil {
		return 0
	}
	return g.ScrollLeft
}

// SetScroll sets the element's scroll offsets. Negative values clamp to zero.
func (e *Element) SetScroll(top, left float64) {
	if e.geometry == nil {
		e.geometry = &ElementGeometry{}
	}
	e.geometry.ScrollTop = max(top, 0)
	e.geometry.ScrollLeft = max(left, 0)
}

// Walk calls fn for e and each of its descendants in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}
