package css

// Show fades els in: it merges an opacity transition (params, or the default
// transition when params is empty) and sets opacity to 1.
func (s *Styler) Show(params string, els ...Element) {
	s.fade(params, "1", els)
}

// Hide fades els out the same way Show fades them in, ending at opacity 0.
func (s *Styler) Hide(params string, els ...Element) {
	s.fade(params, "0", els)
}

func (s *Styler) fade(params, opacity string, els []Element) {
	entry := "opacity"
	if params != "" {
		entry += " " + params
	}
	s.SetTransition([]string{entry}, els...)
	s.SetOneProperty("opacity", opacity, els...)
}
