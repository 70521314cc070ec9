//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/chrisuehlinger/stylekit/css"
)

var _ css.Window = Window{}

// Window is the browser window.
type Window struct {
	js.Value
}

// Global returns the global window object.
func Global() Window {
	return Window{Value: js.Global()}
}

func (w Window) InnerWidth() float64  { return w.Get("innerWidth").Float() }
func (w Window) InnerHeight() float64 { return w.Get("innerHeight").Float() }

func (w Window) RootScroll() (top, left float64, ok bool) {
	root := w.Get("document").Get("documentElement")
	if root.IsNull() || root.IsUndefined() {
		return 0, 0, false
	}
	return root.Get("scrollTop").Float(), root.Get("scrollLeft").Float(), true
}

func (w Window) BodyScroll() (top, left float64) {
	body := w.Get("document").Get("body")
	if body.IsNull() || body.IsUndefined() {
		return 0, 0
	}
	return body.Get("scrollTop").Float(), body.Get("scrollLeft").Float()
}
