package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisuehlinger/stylekit/cssname"
)

// fakeElement is a minimal host element: computed style falls back from the
// inline style to a fixed base map.
type fakeElement struct {
	classes []string
	inline  map[string]string // kebab-case
	base    map[string]string // kebab-case
	rect    Rect

	offsetW, offsetH float64
	clientW, clientH float64
}

func newFake(classes ...string) *fakeElement {
	return &fakeElement{
		classes: classes,
		inline:  map[string]string{},
		base:    map[string]string{},
	}
}

func (f *fakeElement) ClassList() ClassList { return (*fakeClassList)(f) }
func (f *fakeElement) Style() InlineStyle { return (*fakeStyle)(f) }
func (f *fakeElement) ComputedStyle() ComputedStyle { return (*fakeComputed)(f) }
func (f *fakeElement) GetBoundingClientRect() Rect { return f.rect }
func (f *fakeElement) OffsetWidth() float64 { return f.offsetW }
func (f *fakeElement) OffsetHeight() float64 { return f.offsetH }
func (f *fakeElement) ClientWidth() float64 { return f.clientW }
func (f *fakeElement) ClientHeight() float64 { return f.clientH }

type fakeClassList fakeElement

func (c *fakeClassList) Contains(token string) bool {
	for _, t := range c.classes {
		if t == token {
			return true
		}
	}
	return false
}

func (c *fakeClassList) Add(token string) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}
	if !c.Contains(token) {
		c.classes = append(c.classes, token)
	}
	return nil
}

func (c *fakeClassList) Remove(token string) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}
	out := c.classes[:0]
	for _, t := range c.classes {
		if t != token {
			out = append(out, t)
		}
	}
	c.classes = out
	return nil
}

type fakeStyle fakeElement

func (s *fakeStyle) Set(camelName, value string) {
	name := cssname.Kebab(camelName)
	if value == "" {
		delete(s.inline, name)
		return
	}
	s.inline[name] = value
}

type fakeComputed fakeElement

func (c *fakeComputed) GetPropertyValue(name string) string {
	if v, ok := c.inline[name]; ok {
		return v
	}
	return c.base[name]
}

func (c *fakeComputed) FloatValue(name string) (float64, error) {
	v := strings.TrimSuffix(c.GetPropertyValue(name), "px")
	return strconv.ParseFloat(v, 64)
}

type fakeWindow struct {
	width, height     float64
	rootTop, rootLeft float64
	hasRoot           bool
	bodyTop, bodyLeft float64
}

func (w *fakeWindow) InnerWidth() float64  { return w.width }
func (w *fakeWindow) InnerHeight() float64 { return w.height }
func (w *fakeWindow) RootScroll() (float64, float64, bool) {
	return w.rootTop, w.rootLeft, w.hasRoot
}
func (w *fakeWindow) BodyScroll() (float64, float64) { return w.bodyTop, w.bodyLeft }
