package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputedStyle is a read-only view of an element's resolved style.
//
// Box dimensions (width, height, margins, paddings, border widths) resolve to
// used pixel values once layout has run. Every other property resolves to the
// inline declaration, then to its initial value.
type ComputedStyle struct {
	element *Element
}

// initialValues are the values reported for properties that are not set.
// Properties missing here resolve to "".
var initialValues = map[string]string{
	"opacity":       "1",
	"display":       "block",
	"visibility":    "visible",
	"margin-top":    "0px",
	"margin-right":  "0px",
	"margin-bottom": "0px",
	"margin-left":   "0px",
}

// GetPropertyValue returns the resolved value of a kebab-case property.
func (cs *ComputedStyle) GetPropertyValue(name string) string {
	name = normalizeCSSPropertyName(name)
	if v, ok := cs.usedValue(name); ok {
		return v
	}
	if v := cs.element.StyleDeclaration().GetPropertyValue(name); v != "" {
		return v
	}
	return initialValues[name]
}

// FloatValue returns the numeric part of a property value in its own unit,
// e.g. 12.5 for "12.5px" and 50 for "50%".
func (cs *ComputedStyle) FloatValue(name string) (float64, error) {
	value := cs.GetPropertyValue(name)
	f, _, ok := ParseLength(value)
	if !ok {
		return 0, ErrNotSupported(fmt.Sprintf("%s value %q is not numeric", name, value))
	}
	return f, nil
}

// usedValue returns the laid-out pixel value of box-model properties.
func (cs *ComputedStyle) usedValue(name string) (string, bool) {
	g := cs.element.layoutGeometry()
	if g == nil || (g.Width == 0 && g.Height == 0 && g.ContentWidth == 0 && g.ContentHeight == 0) {
		return "", false
	}
	var v float64
	switch name {
	case "width":
		v = g.ContentWidth
	case "height":
		v = g.ContentHeight
	case "margin-top":
		v = g.MarginTop
	case "margin-right":
		v = g.MarginRight
	case "margin-bottom":
		v = g.MarginBottom
	case "margin-left":
		v = g.MarginLeft
	case "padding-top":
		v = g.PaddingTop
	case "padding-right":
		v = g.PaddingRight
	case "padding-bottom":
		v = g.PaddingBottom
	case "padding-left":
		v = g.PaddingLeft
	case "border-top-width":
		v = g.BorderTop
	case "border-right-width":
		v = g.BorderRight
	case "border-bottom-width":
		v = g.BorderBottom
	case "border-left-width":
		v = g.BorderLeft
	default:
		return "", false
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px", true
}

// ParseLength splits a CSS length such as "12.5px", "-3em", "50%" or "0" into
// its number and unit. ok is false when value does not start with a number.
func ParseLength(value string) (number float64, unit string, ok bool) {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) {
		c := value[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, "", false
	}
	f, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return f, strings.ToLower(value[end:]), true
}
