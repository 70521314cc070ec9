package dom

import "github.com/chrisuehlinger/stylekit/css"

// Window is the viewport a document is displayed in.
type Window struct {
	doc           *Document
	width, height float64
}

var _ css.Window = (*Window)(nil)

// NewWindow creates a width x height viewport showing doc. A nil doc
// reports no scroll offset.
func NewWindow(doc *Document, width, height float64) *Window {
	return &Window{doc: doc, width: width, height: height}
}

// Document returns the displayed document.
func (w *Window) Document() *Document {
	return w.doc
}

// InnerWidth returns the viewport width.
func (w *Window) InnerWidth() float64 {
	return w.width
}

// InnerHeight returns the viewport height.
func (w *Window) InnerHeight() float64 {
	return w.height
}

// RootScroll returns the root element's scroll offset.
func (w *Window) RootScroll() (top, left float64, ok bool) {
	if w.doc == nil {
		return 0, 0, false
	}
	root := w.doc.DocumentElement()
	if root == nil {
		return 0, 0, false
	}
	return root.ScrollTop(), root.ScrollLeft(), true
}

// BodyScroll returns the body's scroll offset, zero without a body.
func (w *Window) BodyScroll() (top, left float64) {
	if w.doc == nil {
		return 0, 0
	}
	body := w.doc.Body()
	if body == nil {
		return 0, 0
	}
	return body.ScrollTop(), body.ScrollLeft()
}
