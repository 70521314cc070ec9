package js

import (
	"sort"

	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/chrisuehlinger/stylekit/css"
)

// Mode declares which elements of a wrapper a method receives.
type Mode int

const (
	// Single methods receive the first wrapped element only. They return
	// undefined on an empty wrapper.
	Single Mode = iota
	// Both methods receive every wrapped element and return the wrapper for
	// chaining.
	Both
)

func (m Mode) String() string {
	if m == Both {
		return "both"
	}
	return "single"
}

// Call is one invocation of a registered method.
type Call struct {
	VM       *goja.Runtime
	Elements []css.Element
	Args     []goja.Value
}

// Argument returns the i'th argument, or undefined.
func (c Call) Argument(i int) goja.Value {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return goja.Undefined()
}

// Method implements a registered operation. The returned value is converted
// with goja's ToValue for Single methods and ignored for Both methods.
type Method func(c Call) (any, error)

// Resolver selects elements for the wrapper function.
type Resolver func(selector string) ([]css.Element, error)

type entry struct {
	mode   Mode
	method Method
}

// Registry maps operation names to methods.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds or replaces the method called name.
func (r *Registry) Register(name string, mode Mode, m Method) {
	r.entries[name] = entry{mode: mode, method: m}
}

// Mode returns the mode name was registered with.
func (r *Registry) Mode(name string) (Mode, bool) {
	e, ok := r.entries[name]
	return e.mode, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install defines the global function fn in rt. fn(selector) resolves the
// selector and returns a wrapper object carrying every registered method.
func (r *Registry) Install(rt *Runtime, fn string, resolve Resolver) error {
	vm := rt.VM()
	return vm.Set(fn, func(call goja.FunctionCall) goja.Value {
		selector := call.Argument(0).String()
		els, err := resolve(selector)
		if err != nil {
			panic(vm.NewGoError(errors.Wrapf(err, "%s(%q)", fn, selector)))
		}
		return r.Wrap(vm, els)
	})
}

// Wrap returns a wrapper object over els.
func (r *Registry) Wrap(vm *goja.Runtime, els []css.Element) *goja.Object {
	obj := vm.NewObject()
	_ = obj.Set("length", len(els))
	for name, e := range r.entries {
		name, e := name, e
		_ = obj.Set(name, func(call goja.FunctionCall) goja.Value {
			c := Call{VM: vm, Elements: els, Args: call.Arguments}
			if e.mode == Single {
				if len(els) == 0 {
					return goja.Undefined()
				}
				c.Elements = els[:1]
			}
			result, err := e.method(c)
			if err != nil {
				panic(vm.NewGoError(errors.Wrap(err, name)))
			}
			if e.mode == Both {
				return obj
			}
			return vm.ToValue(result)
		})
	}
	return obj
}
