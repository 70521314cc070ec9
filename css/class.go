package css

// HasClass reports whether el carries the class name.
func (s *Styler) HasClass(el Element, name string) bool {
	return el.ClassList().Contains(name)
}

// AddClass adds name to every element.
func (s *Styler) AddClass(name string, els ...Element) error {
	for _, el := range els {
		if err := el.ClassList().Add(name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveClass removes name from every element.
func (s *Styler) RemoveClass(name string, els ...Element) error {
	for _, el := range els {
		if err := el.ClassList().Remove(name); err != nil {
			return err
		}
	}
	return nil
}

// ToggleClass flips name on every element independently.
func (s *Styler) ToggleClass(name string, els ...Element) error {
	for _, el := range els {
		cl := el.ClassList()
		var err error
		if cl.Contains(name) {
			err = cl.Remove(name)
		} else {
			err = cl.Add(name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CycleClass moves name from the first element that carries it to the next
// element in els, wrapping around at the end. It does nothing when no element
// carries the class.
//
// CycleClass takes a slice rather than variadic elements: which element is
// "next" depends on the caller's ordering.
func (s *Styler) CycleClass(els []Element, name string) error {
	for i, el := range els {
		cl := el.ClassList()
		if !cl.Contains(name) {
			continue
		}
		if err := cl.Remove(name); err != nil {
			return err
		}
		return els[(i+1)%len(els)].ClassList().Add(name)
	}
	return nil
}
