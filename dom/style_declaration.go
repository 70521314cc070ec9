package dom

import (
	"strings"

	"github.com/chrisuehlinger/stylekit/cssname"
)

// CSSStyleDeclaration represents an element's inline style. Properties are
// kept in kebab-case in the order they were first set, and every change is
// mirrored into the element's style attribute.
type CSSStyleDeclaration struct {
	element *Element

	declarations  map[string]*styleProperty
	propertyOrder []string
}

// styleProperty holds a single CSS property's value and priority.
type styleProperty struct {
	value    string
	priority string // "important" or ""
}

// NewCSSStyleDeclaration creates a CSSStyleDeclaration for an element, parsed
// from its current style attribute.
func NewCSSStyleDeclaration(element *Element) *CSSStyleDeclaration {
	sd := &CSSStyleDeclaration{
		element:      element,
		declarations: make(map[string]*styleProperty),
	}
	if element != nil && element.HasAttribute("style") {
		sd.parseFromAttribute(element.GetAttribute("style"))
	}
	return sd
}

// CSSText returns the textual representation of the declaration block.
func (sd *CSSStyleDeclaration) CSSText() string {
	parts := make([]string, 0, len(sd.propertyOrder))
	for _, prop := range sd.propertyOrder {
		sp := sd.declarations[prop]
		part := prop + ": " + sp.value
		if sp.priority == "important" {
			part += " !important"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

// SetCSSText replaces all properties with those parsed from cssText.
func (sd *CSSStyleDeclaration) SetCSSText(cssText string) {
	sd.reset()
	sd.parseFromAttribute(cssText)
	sd.syncToAttribute()
}

// Length returns the number of properties set.
func (sd *CSSStyleDeclaration) Length() int {
	return len(sd.propertyOrder)
}

// Item returns the property name at the given index.
func (sd *CSSStyleDeclaration) Item(index int) string {
	if index < 0 || index >= len(sd.propertyOrder) {
		return ""
	}
	return sd.propertyOrder[index]
}

// GetPropertyValue returns the value of a property given in kebab-case or
// camelCase.
func (sd *CSSStyleDeclaration) GetPropertyValue(property string) string {
	if sp, ok := sd.declarations[normalizeCSSPropertyName(property)]; ok {
		return sp.value
	}
	return ""
}

// GetPropertyPriority returns "important" or "".
func (sd *CSSStyleDeclaration) GetPropertyPriority(property string) string {
	if sp, ok := sd.declarations[normalizeCSSPropertyName(property)]; ok {
		return sp.priority
	}
	return ""
}

// SetProperty sets a property with an optional priority. An empty value
// removes the property.
func (sd *CSSStyleDeclaration) SetProperty(property, value string, priority ...string) {
	property = normalizeCSSPropertyName(property)
	if property == "" {
		return
	}
	if value == "" {
		sd.RemoveProperty(property)
		return
	}

	pri := ""
	if len(priority) > 0 && strings.EqualFold(priority[0], "important") {
		pri = "important"
	}
	sd.put(property, value, pri)
	sd.syncToAttribute()
}

// Set assigns a property by its camelCase name, the way element.style[name]
// assignment does.
func (sd *CSSStyleDeclaration) Set(camelName, value string) {
	sd.SetProperty(cssname.Kebab(camelName), value)
}

// RemoveProperty removes a property and returns its old value.
func (sd *CSSStyleDeclaration) RemoveProperty(property string) string {
	property = normalizeCSSPropertyName(property)
	sp, ok := sd.declarations[property]
	if !ok {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.propertyOrder {
		if p == property {
			sd.propertyOrder = append(sd.propertyOrder[:i], sd.propertyOrder[i+1:]...)
			break
		}
	}
	sd.syncToAttribute()
	return sp.value
}

// PropertyNames returns all property names in declaration order.
func (sd *CSSStyleDeclaration) PropertyNames() []string {
	result := make([]string, len(sd.propertyOrder))
	copy(result, sd.propertyOrder)
	return result
}

// RefreshFromAttribute reloads declarations from the element's style
// attribute after it was changed directly.
func (sd *CSSStyleDeclaration) RefreshFromAttribute() {
	sd.reset()
	if sd.element != nil && sd.element.HasAttribute("style") {
		sd.parseFromAttribute(sd.element.GetAttribute("style"))
	}
}

func (sd *CSSStyleDeclaration) reset() {
	sd.declarations = make(map[string]*styleProperty)
	sd.propertyOrder = nil
}

func (sd *CSSStyleDeclaration) put(property, value, priority string) {
	if _, exists := sd.declarations[property]; !exists {
		sd.propertyOrder = append(sd.propertyOrder, property)
	}
	sd.declarations[property] = &styleProperty{value: value, priority: priority}
}

// parseFromAttribute parses "name: value; name: value !important" text.
func (sd *CSSStyleDeclaration) parseFromAttribute(styleAttr string) {
	for _, part := range strings.Split(styleAttr, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = normalizeCSSPropertyName(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}

		priority := ""
		if idx := strings.LastIndex(value, "!"); idx != -1 &&
			strings.EqualFold(strings.TrimSpace(value[idx+1:]), "important") {
			priority = "important"
			value = strings.TrimSpace(value[:idx])
		}
		sd.put(property, value, priority)
	}
}

// syncToAttribute mirrors the declarations into the style attribute without
// triggering a re-parse.
func (sd *CSSStyleDeclaration) syncToAttribute() {
	if sd.element == nil {
		return
	}
	cssText := sd.CSSText()
	if cssText == "" {
		sd.element.removeAttribute("style")
		return
	}
	sd.element.setAttribute("style", cssText)
}

// normalizeCSSPropertyName lowercases a property name, converting camelCase
// to kebab-case first. Custom properties keep their case.
func normalizeCSSPropertyName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(cssname.Kebab(name))
}
