// Package css is a small convenience layer over an element's class list, inline
// style, computed style and layout geometry.
//
// Every mutating operation accepts one element or many through a variadic
// parameter and applies itself to each element in order. The package never
// imports a concrete DOM: it works against the Element and Window interfaces
// declared in host.go, implemented by the in-memory dom package and by the
// syscall/js adapter in the browser package.
//
// The one piece with real logic is the transition merge (SetTransitionSingle):
// an element has a single transition declaration, so independent callers
// animating different properties must merge into it rather than overwrite it.
package css
