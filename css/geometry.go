package css

import "math"

// Height returns the computed content height of el, excluding padding, border
// and margin.
func (s *Styler) Height(el Element) (float64, error) {
	return el.ComputedStyle().FloatValue("height")
}

// Width returns the computed content width of el, excluding padding, border
// and margin.
func (s *Styler) Width(el Element) (float64, error) {
	return el.ComputedStyle().FloatValue("width")
}

// InnerHeight returns the height of el including padding.
func (s *Styler) InnerHeight(el Element) float64 {
	return el.ClientHeight()
}

// InnerWidth returns the width of el including padding.
func (s *Styler) InnerWidth(el Element) float64 {
	return el.ClientWidth()
}

// OuterHeight returns the border-box height of el when includeMargin is set.
// Otherwise it adds the computed top and bottom margins and rounds up.
func (s *Styler) OuterHeight(el Element, includeMargin bool) (float64, error) {
	return outer(el.OffsetHeight(), el.ComputedStyle(), includeMargin, "margin-top", "margin-bottom")
}

// OuterWidth is OuterHeight for the horizontal axis.
func (s *Styler) OuterWidth(el Element, includeMargin bool) (float64, error) {
	return outer(el.OffsetWidth(), el.ComputedStyle(), includeMargin, "margin-left", "margin-right")
}

func outer(offset float64, cs ComputedStyle, includeMargin bool, before, after string) (float64, error) {
	if includeMargin {
		return offset, nil
	}
	m1, err := cs.FloatValue(before)
	if err != nil {
		return 0, err
	}
	m2, err := cs.FloatValue(after)
	if err != nil {
		return 0, err
	}
	return math.Ceil(offset + m1 + m2), nil
}

// Top returns the document-relative top edge of el.
func (s *Styler) Top(el Element) float64 {
	top, _ := s.scroll()
	return el.GetBoundingClientRect().Top + top
}

// Left returns the document-relative left edge of el.
func (s *Styler) Left(el Element) float64 {
	_, left := s.scroll()
	return el.GetBoundingClientRect().Left + left
}

// scroll returns the document scroll offset per axis: the root element's
// offset when it is non-zero, the body's otherwise.
func (s *Styler) scroll() (top, left float64) {
	if s.window == nil {
		return 0, 0
	}
	rootTop, rootLeft, ok := s.window.RootScroll()
	bodyTop, bodyLeft := s.window.BodyScroll()
	top, left = bodyTop, bodyLeft
	if ok && rootTop != 0 {
		top = rootTop
	}
	if ok && rootLeft != 0 {
		left = rootLeft
	}
	return top, left
}

// AboveTheTop reports whether el lies entirely above the viewport.
func (s *Styler) AboveTheTop(el Element) bool {
	return el.GetBoundingClientRect().Bottom <= 0
}

// BelowTheFold reports whether el starts below the viewport.
func (s *Styler) BelowTheFold(el Element) bool {
	return el.GetBoundingClientRect().Top > s.viewportHeight()
}

// LeftOfScreen reports whether el lies entirely left of the viewport.
func (s *Styler) LeftOfScreen(el Element) bool {
	return el.GetBoundingClientRect().Right <= 0
}

// RightOfScreen reports whether el starts right of the viewport.
func (s *Styler) RightOfScreen(el Element) bool {
	return el.GetBoundingClientRect().Left > s.viewportWidth()
}

// InViewport reports whether any part of el may be visible.
func (s *Styler) InViewport(el Element) bool {
	r := el.GetBoundingClientRect()
	return !(r.Bottom <= 0 || r.Top > s.viewportHeight() ||
		r.Right <= 0 || r.Left > s.viewportWidth())
}

func (s *Styler) viewportHeight() float64 {
	if s.window == nil {
		return 0
	}
	return s.window.InnerHeight()
}

func (s *Styler) viewportWidth() float64 {
	if s.window == nil {
		return 0
	}
	return s.window.InnerWidth()
}
