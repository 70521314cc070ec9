package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassOperations(t *testing.T) {
	s := New()
	a, b := newFake("x"), newFake()

	assert.True(t, s.HasClass(a, "x"))
	assert.False(t, s.HasClass(b, "x"))

	require.NoError(t, s.AddClass("y", a, b))
	assert.True(t, s.HasClass(a, "y"))
	assert.True(t, s.HasClass(b, "y"))

	// Adding twice is not an error.
	require.NoError(t, s.AddClass("y", a))
	assert.Equal(t, []string{"x", "y"}, a.classes)

	require.NoError(t, s.RemoveClass("x", a, b))
	assert.False(t, s.HasClass(a, "x"))

	require.NoError(t, s.ToggleClass("x", a, b))
	assert.True(t, s.HasClass(a, "x"))
	assert.True(t, s.HasClass(b, "x"))
	require.NoError(t, s.ToggleClass("y", a))
	assert.False(t, s.HasClass(a, "y"))
	assert.True(t, s.HasClass(b, "y"))
}

func TestClassOperationsPropagateHostError(t *testing.T) {
	s := New()
	a, b := newFake(), newFake()

	assert.Error(t, s.AddClass("", a, b))
	assert.Error(t, s.RemoveClass("", a))
	assert.Error(t, s.ToggleClass("", a))
}

func holders(els []*fakeElement, name string) []int {
	var idx []int
	for i, el := range els {
		if (*fakeClassList)(el).Contains(name) {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestCycleClass(t *testing.T) {
	s := New()
	fakes := []*fakeElement{newFake(), newFake("active"), newFake(), newFake()}
	els := Elements(fakes)

	require.NoError(t, s.CycleClass(els, "active"))
	assert.Equal(t, []int{2}, holders(fakes, "active"))

	require.NoError(t, s.CycleClass(els, "active"))
	require.NoError(t, s.CycleClass(els, "active"))
	assert.Equal(t, []int{0}, holders(fakes, "active"), "wraps around")
}

func TestCycleClassReturnsToOrigin(t *testing.T) {
	s := New()
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			fakes := make([]*fakeElement, n)
			for i := range fakes {
				fakes[i] = newFake()
			}
			fakes[start].classes = []string{"on"}
			els := Elements(fakes)

			for step := 1; step <= n; step++ {
				require.NoError(t, s.CycleClass(els, "on"))
				got := holders(fakes, "on")
				require.Len(t, got, 1)
				assert.Equal(t, (start+step)%n, got[0])
			}
			assert.Equal(t, []int{start}, holders(fakes, "on"))
		}
	}
}

func TestCycleClassOnlyFirstHolderMoves(t *testing.T) {
	s := New()
	fakes := []*fakeElement{newFake("on"), newFake(), newFake("on")}

	require.NoError(t, s.CycleClass(Elements(fakes), "on"))
	assert.Equal(t, []int{1, 2}, holders(fakes, "on"))
}

func TestCycleClassNoop(t *testing.T) {
	s := New()
	assert.NoError(t, s.CycleClass(nil, "on"))
	assert.NoError(t, s.CycleClass([]Element{}, "on"))

	fakes := []*fakeElement{newFake(), newFake()}
	require.NoError(t, s.CycleClass(Elements(fakes), "on"))
	assert.Empty(t, holders(fakes, "on"))
}

func TestElementsPreservesOrderAndDuplicates(t *testing.T) {
	a, b := newFake(), newFake()
	got := Elements([]*fakeElement{a, b, a})
	require.Len(t, got, 3)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Same(t, a, got[2])
}
