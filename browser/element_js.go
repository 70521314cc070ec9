//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/chrisuehlinger/stylekit/css"
	"github.com/chrisuehlinger/stylekit/dom"
)

var _ css.Element = Element{}

// Element is a DOM element.
type Element struct {
	js.Value
}

// Wrap returns els as css elements.
func Wrap(els ...js.Value) []css.Element {
	out := make([]css.Element, len(els))
	for i, v := range els {
		out[i] = Element{Value: v}
	}
	return out
}

// QuerySelectorAll runs document.querySelectorAll and wraps the result.
func QuerySelectorAll(selector string) (els []css.Element, err error) {
	defer recoverJS(&err, "querySelectorAll")
	list := js.Global().Get("document").Call("querySelectorAll", selector)
	n := list.Length()
	els = make([]css.Element, n)
	for i := 0; i < n; i++ {
		els[i] = Element{Value: list.Index(i)}
	}
	return els, nil
}

func (e Element) ClassList() css.ClassList {
	return ClassList{Value: e.Get("classList")}
}

func (e Element) Style() css.InlineStyle {
	return Style{Value: e.Get("style")}
}

func (e Element) ComputedStyle() css.ComputedStyle {
	return ComputedStyle{Value: js.Global().Call("getComputedStyle", e.Value)}
}

func (e Element) GetBoundingClientRect() css.Rect {
	r := e.Call("getBoundingClientRect")
	return css.Rect{
		Top:    r.Get("top").Float(),
		Right:  r.Get("right").Float(),
		Bottom: r.Get("bottom").Float(),
		Left:   r.Get("left").Float(),
	}
}

func (e Element) OffsetWidth() float64  { return e.Get("offsetWidth").Float() }
func (e Element) OffsetHeight() float64 { return e.Get("offsetHeight").Float() }
func (e Element) ClientWidth() float64  { return e.Get("clientWidth").Float() }
func (e Element) ClientHeight() float64 { return e.Get("clientHeight").Float() }

// ClassList wraps element.classList.
type ClassList struct {
	js.Value
}

// Contains checks for an existing class.
func (c ClassList) Contains(class string) bool {
	return c.Call("contains", class).Bool()
}

// Add calls classList.add. An invalid token raises a DOMException, which is
// returned as an error.
func (c ClassList) Add(class string) (err error) {
	defer recoverJS(&err, "classList.add")
	c.Call("add", class)
	return nil
}

// Remove calls classList.remove.
func (c ClassList) Remove(class string) (err error) {
	defer recoverJS(&err, "classList.remove")
	c.Call("remove", class)
	return nil
}

// Style wraps element.style.
type Style struct {
	js.Value
}

func (s Style) Set(camelName, value string) {
	s.Value.Set(camelName, value)
}

// ComputedStyle wraps the result of getComputedStyle.
type ComputedStyle struct {
	js.Value
}

func (cs ComputedStyle) GetPropertyValue(name string) string {
	return cs.Call("getPropertyValue", name).String()
}

func (cs ComputedStyle) FloatValue(name string) (float64, error) {
	value := cs.GetPropertyValue(name)
	f, _, ok := dom.ParseLength(value)
	if !ok {
		return 0, dom.ErrNotSupported(fmt.Sprintf("%s value %q is not numeric", name, value))
	}
	return f, nil
}

// recoverJS turns a panic raised by a js.Value call into an error.
func recoverJS(err *error, op string) {
	p := recover()
	if p == nil {
		return
	}
	if jsErr, ok := p.(js.Error); ok {
		*err = errors.Wrap(jsErr, op)
		return
	}
	panic(p)
}
