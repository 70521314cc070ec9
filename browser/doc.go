// Package browser adapts the live DOM of a GOOS=js GOARCH=wasm build to the
// css host interfaces.
//
// Element wraps an element's js.Value and Window wraps the global window, so a
// css.Styler built with WithWindow(browser.Global()) drives the page it is
// loaded into. On other platforms the package is empty.
package browser
