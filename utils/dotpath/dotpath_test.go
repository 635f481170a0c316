package dotpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Meta struct {
	Tags []string `json:"tags"`
}

type Base struct {
	ID string `yaml:"id"`
}

type Post struct {
	Base
	Title  string
	Meta   *Meta `json:"meta"`
	secret string
	Hidden string `json:"-"`
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Equal(t, []string{"a"}, Split("a"))
	assert.Equal(t, []string{"a", "b", "c"}, Split("a..b.c."))
	assert.Equal(t, "a.b", Join("a", "b"))
}

func TestResolveMaps(t *testing.T) {
	doc := map[string]any{
		"address": map[string]any{"state": "QLD"},
		"nothing": nil,
		"list":    []any{"x", map[string]any{"y": 1}},
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"address.state", "QLD", true},
		{"address.zip", nil, false},
		{"nothing", nil, true},
		{"nothing.deeper", nil, false},
		{"list.0", "x", true},
		{"list.1.y", 1, true},
		{"list.2", nil, false},
		{"list.-1", nil, false},
		{"list.first", nil, false},
		{"missing.path", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Resolve(doc, tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEmptyPath(t *testing.T) {
	got, ok := Resolve(42, "")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestResolveStructs(t *testing.T) {
	post := &Post{
		Base:   Base{ID: "p1"},
		Title:  "Hello",
		Meta:   &Meta{Tags: []string{"go", "tools"}},
		secret: "s",
		Hidden: "h",
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"Title", "Hello", true},
		{"title", "Hello", true},
		{"id", "p1", true},
		{"ID", "p1", true},
		{"meta.tags.1", "tools", true},
		{"Meta.Tags.0", "go", true},
		{"secret", nil, false},
		{"Hidden", nil, false},
		{"Base", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Resolve(post, tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNilPointers(t *testing.T) {
	var post *Post
	_, ok := Resolve(post, "Title")
	assert.False(t, ok)

	_, ok = Resolve(Post{}, "meta.tags")
	assert.False(t, ok)

	_, ok = Resolve(nil, "a")
	assert.False(t, ok)
}

func TestLookupDoesNotSplit(t *testing.T) {
	doc := map[string]any{"a.b": 1, "a": map[string]any{"b": 2}}

	got, ok := Lookup(doc, "a.b")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = Resolve(doc, "a.b")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestLookupTypedMapKeys(t *testing.T) {
	type key string
	got, ok := Lookup(map[key]int{"x": 1}, "x")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = Lookup(map[int]int{1: 1}, "1")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	keys, ok := Keys(map[string]any{"b": 1, "a": 2})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, keys)

	keys, ok = Keys(Post{})
	require.True(t, ok)
	assert.Equal(t, []string{"id", "Title", "meta"}, keys)

	_, ok = Keys([]int{1})
	assert.False(t, ok)
	_, ok = Keys(nil)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	doc := map[string]any{"a": "scalar"}

	Set(doc, "a.b.c", 1)
	Set(doc, "x", true)
	Set(doc, "", "ignored")

	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 1}},
		"x": true,
	}, doc)
}
