package js

import (
	"github.com/dop251/goja"

	"github.com/chrisuehlinger/stylekit/css"
)

// RegisterStyler registers every css.Styler operation under its script name.
//
// Queries (hasClass, getProperty and the geometry reads) are Single; mutations
// are Both and chain. setProperty accepts either (name, value) or an object of
// name/value pairs; setTransition accepts a string or an array of strings.
func RegisterStyler(reg *Registry, s *css.Styler) {
	reg.Register("hasClass", Single, func(c Call) (any, error) {
		return s.HasClass(c.Elements[0], c.Argument(0).String()), nil
	})
	reg.Register("addClass", Both, func(c Call) (any, error) {
		return nil, s.AddClass(c.Argument(0).String(), c.Elements...)
	})
	reg.Register("removeClass", Both, func(c Call) (any, error) {
		return nil, s.RemoveClass(c.Argument(0).String(), c.Elements...)
	})
	reg.Register("toggleClass", Both, func(c Call) (any, error) {
		return nil, s.ToggleClass(c.Argument(0).String(), c.Elements...)
	})
	reg.Register("cycleClass", Both, func(c Call) (any, error) {
		return nil, s.CycleClass(c.Elements, c.Argument(0).String())
	})

	reg.Register("getProperty", Single, func(c Call) (any, error) {
		return s.GetProperty(c.Elements[0], c.Argument(0).String()), nil
	})
	reg.Register("setProperty", Both, func(c Call) (any, error) {
		if props, ok := propertyMap(c.Argument(0)); ok {
			s.SetProperties(props, c.Elements...)
			return nil, nil
		}
		s.SetOneProperty(c.Argument(0).String(), optionalString(c.Argument(1)), c.Elements...)
		return nil, nil
	})

	reg.Register("setTransition", Both, func(c Call) (any, error) {
		s.SetTransition(stringList(c.VM, c.Argument(0)), c.Elements...)
		return nil, nil
	})
	reg.Register("show", Both, func(c Call) (any, error) {
		s.Show(optionalString(c.Argument(0)), c.Elements...)
		return nil, nil
	})
	reg.Register("hide", Both, func(c Call) (any, error) {
		s.Hide(optionalString(c.Argument(0)), c.Elements...)
		return nil, nil
	})

	reg.Register("height", Single, func(c Call) (any, error) {
		return s.Height(c.Elements[0])
	})
	reg.Register("width", Single, func(c Call) (any, error) {
		return s.Width(c.Elements[0])
	})
	reg.Register("innerHeight", Single, func(c Call) (any, error) {
		return s.InnerHeight(c.Elements[0]), nil
	})
	reg.Register("innerWidth", Single, func(c Call) (any, error) {
		return s.InnerWidth(c.Elements[0]), nil
	})
	reg.Register("outerHeight", Single, func(c Call) (any, error) {
		return s.OuterHeight(c.Elements[0], c.Argument(0).ToBoolean())
	})
	reg.Register("outerWidth", Single, func(c Call) (any, error) {
		return s.OuterWidth(c.Elements[0], c.Argument(0).ToBoolean())
	})
	reg.Register("top", Single, func(c Call) (any, error) {
		return s.Top(c.Elements[0]), nil
	})
	reg.Register("left", Single, func(c Call) (any, error) {
		return s.Left(c.Elements[0]), nil
	})

	predicates := map[string]func(css.Element) bool{
		"aboveTheTop":   s.AboveTheTop,
		"belowTheFold":  s.BelowTheFold,
		"leftOfScreen":  s.LeftOfScreen,
		"rightOfScreen": s.RightOfScreen,
		"inViewport":    s.InViewport,
	}
	for name, pred := range predicates {
		pred := pred
		reg.Register(name, Single, func(c Call) (any, error) {
			return pred(c.Elements[0]), nil
		})
	}
}

// propertyMap converts a plain (non-array) object argument to a property map.
func propertyMap(v goja.Value) (map[string]string, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj.ClassName() == "Array" {
		return nil, false
	}
	props := make(map[string]string)
	for _, key := range obj.Keys() {
		props[key] = obj.Get(key).String()
	}
	return props, true
}

// stringList converts a string or an array argument to a list of strings.
func stringList(vm *goja.Runtime, v goja.Value) []string {
	if obj, ok := v.(*goja.Object); ok && obj.ClassName() == "Array" {
		var list []string
		if err := vm.ExportTo(obj, &list); err == nil {
			return list
		}
	}
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return []string{v.String()}
}

// optionalString returns "" for undefined and null.
func optionalString(v goja.Value) string {
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
