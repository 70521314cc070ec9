package css

// Element is the host element surface the Styler reads and mutates.
type Element interface {
	ClassList() ClassList
	Style() InlineStyle
	ComputedStyle() ComputedStyle
	GetBoundingClientRect() Rect

	// OffsetWidth and OffsetHeight measure the border box.
	OffsetWidth() float64
	OffsetHeight() float64

	// ClientWidth and ClientHeight measure content plus padding.
	ClientWidth() float64
	ClientHeight() float64
}

// ClassList is an element's set of class tokens.
type ClassList interface {
	Contains(token string) bool
	Add(token string) error
	Remove(token string) error
}

// InlineStyle is an element's inline style, addressed by camelCase property
// name the way element.style[name] is in a browser.
type InlineStyle interface {
	Set(camelName, value string)
}

// ComputedStyle is the resolved style of an element, addressed by kebab-case
// property name.
type ComputedStyle interface {
	GetPropertyValue(name string) string

	// FloatValue returns the numeric part of a dimension property in its own
	// unit. It fails when the value is not numeric.
	FloatValue(name string) (float64, error)
}

// Rect is an element's bounding rectangle in viewport coordinates.
type Rect struct {
	Top, Right, Bottom, Left float64
}

// Window supplies the viewport size and document scroll offsets.
type Window interface {
	InnerWidth() float64
	InnerHeight() float64

	// RootScroll reports the scroll offset of the document element. ok is
	// false when the document has no root element.
	RootScroll() (top, left float64, ok bool)

	// BodyScroll reports the scroll offset of the body element.
	BodyScroll() (top, left float64)
}

// Elements converts a typed slice into the []Element the Styler works on,
// preserving order and duplicates.
func Elements[T Element](xs []T) []Element {
	out := make([]Element, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
