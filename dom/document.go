package dom

import "strings"

// Document is an in-memory HTML document: a tree of Elements under a single
// root element.
type Document struct {
	root *Element
	url  string

	// layout recomputes element geometry. It runs before the next geometry
	// read once dirty is set.
	layout func()
	dirty  bool
}

// NewDocument creates an empty document with the about:blank URL.
func NewDocument() *Document {
	return &Document{url: "about:blank"}
}

// URL returns the document's URL.
func (d *Document) URL() string {
	return d.url
}

// SetURL sets the document's URL.
func (d *Document) SetURL(url string) {
	d.url = url
}

// SetLayout installs the function that recomputes geometry for d and marks
// the document clean. The layout package installs itself here.
func (d *Document) SetLayout(fn func()) {
	d.layout = fn
	d.dirty = false
}

// Invalidate marks the current geometry stale. It is called whenever the
// tree, a class list or an inline style changes.
func (d *Document) Invalidate() {
	d.dirty = true
}

// Reflow reruns layout if the geometry is stale.
func (d *Document) Reflow() {
	if !d.dirty || d.layout == nil {
		return
	}
	d.dirty = false
	d.layout()
}

// CreateElement creates an element owned by d. The tag name is lowercased.
func (d *Document) CreateElement(tagName string) *Element {
	return &Element{
		tagName:  strings.ToLower(tagName),
		ownerDoc: d,
	}
}

// DocumentElement returns the root element.
func (d *Document) DocumentElement() *Element {
	return d.root
}

// SetDocumentElement replaces the root element.
func (d *Document) SetDocumentElement(el *Element) {
	if el != nil && el.parent != nil {
		el.parent.RemoveChild(el)
	}
	d.root = el
	d.Invalidate()
}

// Head returns the <head> child of the root element.
func (d *Document) Head() *Element {
	return d.rootChild("head")
}

// Body returns the <body> child of the root element.
func (d *Document) Body() *Element {
	return d.rootChild("body")
}

func (d *Document) rootChild(tagName string) *Element {
	if d.root == nil {
		return nil
	}
	for _, c := range d.root.children {
		if c.tagName == tagName {
			return c
		}
	}
	return nil
}

// Elements returns every element in document order.
func (d *Document) Elements() []*Element {
	var result []*Element
	if d.root != nil {
		d.root.Walk(func(el *Element) {
			result = append(result, el)
		})
	}
	return result
}

// GetElementById returns the first element with the given id.
func (d *Document) GetElementById(id string) *Element {
	for _, el := range d.Elements() {
		if el.Id() == id {
			return el
		}
	}
	return nil
}

// GetElementsByClassName returns the elements carrying every class in
// classNames (space separated).
func (d *Document) GetElementsByClassName(classNames string) []*Element {
	names := strings.Fields(classNames)
	if len(names) == 0 {
		return nil
	}
	var result []*Element
	for _, el := range d.Elements() {
		all := true
		for _, name := range names {
			if !el.TokenList().Contains(name) {
				all = false
				break
			}
		}
		if all {
			result = append(result, el)
		}
	}
	return result
}

// ScrollOffset returns the document's scroll position (x, y): the root
// element's offset on an axis where it is non-zero, the body's otherwise.
func (d *Document) ScrollOffset() (x, y float64) {
	if body := d.Body(); body != nil {
		x, y = body.ScrollLeft(), body.ScrollTop()
	}
	if d.root != nil {
		if v := d.root.ScrollLeft(); v != 0 {
			x = v
		}
		if v := d.root.ScrollTop(); v != 0 {
			y = v
		}
	}
	return x, y
}

// ScrollTo scrolls the document to (x, y) by setting the root element's scroll
// offsets.
func (d *Document) ScrollTo(x, y float64) {
	if d.root != nil {
		d.root.SetScroll(y, x)
	}
}
