package css

import "github.com/chrisuehlinger/stylekit/cssname"

// GetProperty returns the computed value of a property. The name may be given
// in camelCase or kebab-case.
func (s *Styler) GetProperty(el Element, name string) string {
	return el.ComputedStyle().GetPropertyValue(cssname.Kebab(name))
}

// SetOneProperty assigns value to the inline property name on every element.
func (s *Styler) SetOneProperty(name, value string, els ...Element) {
	camel := cssname.Camel(name)
	for _, el := range els {
		el.Style().Set(camel, value)
	}
}

// SetProperties assigns every entry of props to the inline style of every
// element. Values are not validated.
func (s *Styler) SetProperties(props map[string]string, els ...Element) {
	for name, value := range props {
		s.SetOneProperty(name, value, els...)
	}
}

// RemoveProperty clears an inline property on every element.
func (s *Styler) RemoveProperty(name string, els ...Element) {
	s.SetOneProperty(name, "", els...)
}
