package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingNavigation(t *testing.T) {
	r := New("input", "mode", "output")

	assert.Equal(t, "input", r.Current())
	assert.Equal(t, "mode", r.Next())
	assert.Equal(t, "output", r.Next())
	assert.Equal(t, "input", r.Next())
	assert.Equal(t, "output", r.Prev())
	assert.True(t, r.IsFocused("output"))
	assert.False(t, r.IsFocused("input"))
}

func TestRingFocusAndReset(t *testing.T) {
	r := New("a", "b", "c")

	assert.True(t, r.Focus("c"))
	assert.Equal(t, "c", r.Current())
	assert.False(t, r.Focus("z"))
	assert.Equal(t, "c", r.Current())

	r.Reset()
	assert.Equal(t, "a", r.Current())
}

func TestRingDropsDuplicates(t *testing.T) {
	r := New("a", "b", "a")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"a", "b"}, r.IDs())
}

func TestEmptyRing(t *testing.T) {
	r := New()
	assert.Equal(t, "", r.Current())
	assert.Equal(t, "", r.Next())
	assert.Equal(t, "", r.Prev())
	assert.False(t, r.IsFocused(""))
	assert.False(t, r.Focus("a"))
}
