package dom

import (
	"fmt"
	"strings"
)

// compoundSelector is a tag name with optional #id and .class parts, e.g.
// "div#main.card.active". An empty tag matches any element.
type compoundSelector struct {
	tag     string
	id      string
	classes []string
}

// complexSelector is a list of compound selectors joined by the descendant
// combinator.
type complexSelector []compoundSelector

// parseSelectorList parses a comma-separated list of selectors built from
// type, universal, id and class selectors and the descendant combinator.
func parseSelectorList(selector string) ([]complexSelector, error) {
	var list []complexSelector
	for _, group := range strings.Split(selector, ",") {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return nil, ErrSyntax(fmt.Sprintf("'%s' is not a valid selector", selector))
		}
		cx := make(complexSelector, 0, len(fields))
		for _, f := range fields {
			cs, err := parseCompound(f)
			if err != nil {
				return nil, err
			}
			cx = append(cx, cs)
		}
		list = append(list, cx)
	}
	return list, nil
}

func parseCompound(s string) (compoundSelector, error) {
	var cs compoundSelector
	invalid := ErrSyntax(fmt.Sprintf("'%s' is not a valid selector", s))

	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' {
		i++
	}
	cs.tag = strings.ToLower(s[:i])
	if cs.tag == "*" {
		cs.tag = ""
	} else if !isIdent(cs.tag) && cs.tag != "" {
		return cs, invalid
	}

	for i < len(s) {
		kind := s[i]
		j := i + 1
		for j < len(s) && s[j] != '#' && s[j] != '.' {
			j++
		}
		name := s[i+1 : j]
		if !isIdent(name) {
			return cs, invalid
		}
		if kind == '#' {
			cs.id = name
		} else {
			cs.classes = append(cs.classes, name)
		}
		i = j
	}
	return cs, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '-', c == '_', c >= 0x80:
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (cs compoundSelector) matches(e *Element) bool {
	if cs.tag != "" && cs.tag != e.tagName {
		return false
	}
	if cs.id != "" && e.Id() != cs.id {
		return false
	}
	for _, c := range cs.classes {
		if !e.TokenList().Contains(c) {
			return false
		}
	}
	return true
}

func (cx complexSelector) matches(e *Element) bool {
	last := len(cx) - 1
	if !cx[last].matches(e) {
		return false
	}
	i := last - 1
	for anc := e.parent; anc != nil && i >= 0; anc = anc.parent {
		if cx[i].matches(anc) {
			i--
		}
	}
	return i < 0
}

// Matches reports whether e matches selector.
func (e *Element) Matches(selector string) (bool, error) {
	list, err := parseSelectorList(selector)
	if err != nil {
		return false, err
	}
	for _, cx := range list {
		if cx.matches(e) {
			return true, nil
		}
	}
	return false, nil
}

// QuerySelectorAll returns every element matching selector, in document order.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	list, err := parseSelectorList(selector)
	if err != nil {
		return nil, err
	}
	var result []*Element
	for _, el := range d.Elements() {
		for _, cx := range list {
			if cx.matches(el) {
				result = append(result, el)
				break
			}
		}
	}
	return result, nil
}

// QuerySelector returns the first element matching selector, or nil.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	all, err := d.QuerySelectorAll(selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}
