package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		entries []string
		want    string
	}{
		{"empty", "", []string{"opacity 1s"}, "opacity 1s"},
		{"default params", "", []string{"opacity"}, "opacity 2s ease"},
		{"append keeps order", "color 1s, opacity 2s ease", []string{"transform 0.5s linear"},
			"color 1s, opacity 2s ease, transform 0.5s linear"},
		{"overwrite keeps position", "color 1s, opacity 2s ease", []string{"opacity 3s"},
			"color 1s, opacity 3s"},
		{"overwrite first", "color 1s, opacity 2s ease", []string{"color 4s linear"},
			"color 4s linear, opacity 2s ease"},
		{"last entry wins", "", []string{"opacity 1s", "opacity 2s"}, "opacity 2s"},
		{"case sensitive", "Opacity 1s", []string{"opacity 2s"}, "Opacity 1s, opacity 2s"},
		{"prefix is not a match", "opacity-x 1s", []string{"opacity 2s"}, "opacity-x 1s, opacity 2s"},
		{"bare existing token", "opacity", []string{"opacity 1s"}, "opacity 1s"},
		{"multiple", "", []string{"opacity 1s", "transform 0.5s ease-in"},
			"opacity 1s, transform 0.5s ease-in"},
		{"no entries", "color 1s,opacity 2s", nil, "color 1s, opacity 2s"},
		{"params keep spaces", "", []string{"left 1s cubic-bezier(0.1, 0.7, 1.0, 0.1) 2s"},
			"left 1s cubic-bezier(0.1, 0.7, 1.0, 0.1) 2s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeTransitions(tt.current, tt.entries, DefaultTransition))
		})
	}
}

func TestMergeTransitionsIdempotent(t *testing.T) {
	for _, current := range []string{"", "color 1s", "color 1s, opacity 2s ease"} {
		once := MergeTransitions(current, []string{"transform 1s"}, DefaultTransition)
		twice := MergeTransitions(once, []string{"transform 1s"}, DefaultTransition)
		assert.Equal(t, once, twice, current)
	}
}

func TestSetTransitionSingleFreshElement(t *testing.T) {
	s := New()
	el := newFake()

	s.SetTransitionSingle(el, "opacity 1s", "transform 0.5s ease-in")

	want := "opacity 1s, transform 0.5s ease-in"
	assert.Equal(t, want, el.inline["transition"])
	assert.Equal(t, want, el.inline["-webkit-transition"])
	assert.Equal(t, want, el.inline["-ms-transition"])
}

func TestSetTransitionSingleReadsVendorFallback(t *testing.T) {
	s := New()

	el := newFake()
	el.base["-webkit-transition"] = "color 1s"
	el.base["-ms-transition"] = "top 9s"
	s.SetTransitionSingle(el, "opacity")
	assert.Equal(t, "color 1s, opacity 2s ease", el.inline["transition"])

	el = newFake()
	el.base["-ms-transition"] = "top 9s"
	s.SetTransitionSingle(el, "opacity 1s")
	assert.Equal(t, "top 9s, opacity 1s", el.inline["transition"])
}

func TestSetTransitionMergesAcrossCalls(t *testing.T) {
	s := New()
	el := newFake()

	s.SetTransitionSingle(el, "color 1s")
	s.SetTransitionSingle(el, "opacity 2s ease")
	s.SetTransitionSingle(el, "color 3s")
	assert.Equal(t, "color 3s, opacity 2s ease", el.inline["transition"])
}

func TestSetTransitionPerElement(t *testing.T) {
	s := New(WithDefaultTransition("1s linear"))
	a, b := newFake(), newFake()
	a.base["transition"] = "color 1s"

	s.SetTransition([]string{"opacity"}, a, b)
	assert.Equal(t, "color 1s, opacity 1s linear", a.inline["transition"])
	assert.Equal(t, "opacity 1s linear", b.inline["transition"])
}

func TestWithDefaultTransitionIgnoresEmpty(t *testing.T) {
	assert.Equal(t, DefaultTransition, New(WithDefaultTransition("")).DefaultTransition())
	assert.Equal(t, "1s", New(WithDefaultTransition("1s")).DefaultTransition())
}

func TestShowHide(t *testing.T) {
	s := New()
	el := newFake()
	el.base["transition"] = "color 1s"

	s.Hide("", el)
	assert.Equal(t, "0", el.inline["opacity"])
	assert.Equal(t, "color 1s, opacity 2s ease", el.inline["transition"])

	s.Show("0.3s linear", el)
	assert.Equal(t, "1", el.inline["opacity"])
	assert.Equal(t, "color 1s, opacity 0.3s linear", el.inline["transition"])
}
