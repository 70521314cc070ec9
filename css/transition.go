package css

import "strings"

// transitionAliases are the computed-style names read, in order, to find an
// element's current transition declaration.
var transitionAliases = []string{"transition", "-webkit-transition", "-ms-transition"}

// transitionStyleNames are the inline style names the merged declaration is
// written to.
var transitionStyleNames = []string{"transition", "webkitTransition", "msTransition"}

// SetTransitionSingle merges entries into el's transition declaration.
//
// Each entry is "property params", e.g. "opacity 1s linear". An entry without
// params gets the Styler's default transition. An entry whose property already
// has a transition replaces it in place; other entries are appended. Entries for
// unrelated properties are kept in their original order.
func (s *Styler) SetTransitionSingle(el Element, entries ...string) {
	current := currentTransition(el.ComputedStyle())
	value := MergeTransitions(current, entries, s.defaultTransition)

	s.log.WithField("op", "setTransition").Debugf("transition %q -> %q", current, value)

	style := el.Style()
	for _, name := range transitionStyleNames {
		style.Set(name, value)
	}
}

// SetTransition runs SetTransitionSingle on every element. Each element is
// merged against its own current declaration.
func (s *Styler) SetTransition(entries []string, els ...Element) {
	for _, el := range els {
		s.SetTransitionSingle(el, entries...)
	}
}

// MergeTransitions merges entries into the comma-separated declaration current
// and returns the new declaration. def is used as params for entries that
// consist of a property name only.
func MergeTransitions(current string, entries []string, def string) string {
	var list []string
	for _, tok := range strings.Split(current, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			list = append(list, tok)
		}
	}

	for _, entry := range entries {
		property, params, ok := strings.Cut(entry, " ")
		if !ok {
			params = def
		}
		merged := property + " " + params

		found := false
		for i, tok := range list {
			if transitionProperty(tok) == property {
				list[i] = merged
				found = true
				break
			}
		}
		if !found {
			list = append(list, merged)
		}
	}
	return strings.Join(list, ", ")
}

// currentTransition returns the first non-empty transition alias.
func currentTransition(cs ComputedStyle) string {
	for _, name := range transitionAliases {
		if v := cs.GetPropertyValue(name); v != "" {
			return v
		}
	}
	return ""
}

// transitionProperty returns the property name a declaration token animates.
func transitionProperty(tok string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(tok), " ")
	return name
}
