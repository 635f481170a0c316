package mapx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
	mdwerrors "github.com/msto63/datakit/core/errors"
)

type base struct {
	ID string `json:"id"`
}

type post struct {
	base
	Title  string         `json:"title"`
	Draft  bool           `json:"draft"`
	Params map[string]any `json:"params"`
	secret string
}

func samplePost() post {
	return post{
		base:   base{ID: "p1"},
		Title:  "Hello",
		Params: map[string]any{"author": map[string]any{"name": "ann"}, "empty": nil},
		secret: "x",
	}
}

func TestHasProperty(t *testing.T) {
	doc := map[string]any{"a": 1, "nil": nil}
	tests := []struct {
		name string
		obj  any
		key  string
		want bool
	}{
		{"map key", doc, "a", true},
		{"map nil value", doc, "nil", true},
		{"map missing", doc, "b", false},
		{"struct field", samplePost(), "title", true},
		{"promoted field", samplePost(), "id", true},
		{"pointer to struct", &post{}, "draft", true},
		{"unexported field", samplePost(), "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasProperty(tt.obj, tt.key).MustUnwrap())
		})
	}
}

func TestHasPropertyRejectsNonObjects(t *testing.T) {
	for _, obj := range []any{nil, "text", 42, []any{1}, map[int]string{1: "a"}} {
		r := HasProperty(obj, "a")
		require.True(t, r.IsErr(), "%#v", obj)
		assert.EqualError(t, r.Err(), "[objects.hasProperty] Expected object as input")
		assert.True(t, mdwerror.HasCode(r.Err(), mdwerror.CodeInvalidInput))
	}
}

func TestHasProperties(t *testing.T) {
	p := samplePost()
	assert.True(t, HasProperties(p, "id", "title").MustUnwrap())
	assert.False(t, HasProperties(p, "id", "author", "title").MustUnwrap())
	assert.True(t, HasProperties(p).IsErr())

	r := HasProperties(7, "id")
	require.True(t, r.IsErr())
	assert.True(t, mdwerrors.IsGroupOperation(r.Err(), mdwerrors.GroupObjects, "hasProperty"))
}

func TestHasPropertyValue(t *testing.T) {
	doc := map[string]any{"count": 1, "name": "x", "tags": []any{"a"}}

	assert.True(t, HasPropertyValue(doc, "count", 1).MustUnwrap())
	assert.False(t, HasPropertyValue(doc, "count", 1.0).MustUnwrap())
	assert.False(t, HasPropertyValue(doc, "count", "1").MustUnwrap())
	assert.True(t, HasPropertyValue(doc, "tags", []any{"a"}).MustUnwrap())
	assert.False(t, HasPropertyValue(doc, "missing", nil).MustUnwrap())
	assert.True(t, HasPropertyValue(samplePost(), "title", "Hello").MustUnwrap())

	r := HasPropertyValue([]int{1}, "0", 1)
	require.True(t, r.IsErr())
	assert.True(t, mdwerrors.IsGroupOperation(r.Err(), mdwerrors.GroupObjects, "hasProperty"))
}

func TestHasPropertiesWithValue(t *testing.T) {
	p := samplePost()
	assert.True(t, HasPropertiesWithValue(p, map[string]any{"id": "p1", "draft": false}).MustUnwrap())
	assert.False(t, HasPropertiesWithValue(p, map[string]any{"id": "p1", "draft": true}).MustUnwrap())
	assert.True(t, HasPropertiesWithValue(p, nil).IsErr())
}

func TestGetPropertyValue(t *testing.T) {
	p := samplePost()
	assert.Equal(t, "ann", GetPropertyValue(p, "params.author.name"))
	assert.Equal(t, "p1", GetPropertyValue(&p, "id"))
	assert.Nil(t, GetPropertyValue(p, "params.empty.name"))
	assert.Nil(t, GetPropertyValue(p, "params.missing"))
	assert.Nil(t, GetPropertyValue(nil, "a"))
	assert.Nil(t, GetPropertyValue(post{}, "params"))
	assert.Equal(t, "b", GetPropertyValue(map[string]any{"list": []any{"a", "b"}}, "list.1"))
}

func TestMerge(t *testing.T) {
	target := map[string]any{
		"a": 1,
		"b": map[string]any{"c": []any{2, 3}, "d": map[string]any{"e": 4}},
	}
	source := map[string]any{
		"a": 2,
		"b": map[string]any{"c": []any{4, 5}, "d": map[string]any{"f": 6}},
	}

	merged := Merge(target, source)
	assert.Equal(t, map[string]any{
		"a": 2,
		"b": map[string]any{"c": []any{2, 3, 4, 5}, "d": map[string]any{"e": 4, "f": 6}},
	}, merged)

	// arguments are untouched
	assert.Equal(t, []any{2, 3}, target["b"].(map[string]any)["c"])
	assert.Equal(t, map[string]any{"e": 4}, target["b"].(map[string]any)["d"])
}

func TestMergeEdgeCases(t *testing.T) {
	t.Run("nil never erases", func(t *testing.T) {
		merged := Merge(map[string]any{"a": 1, "m": map[string]any{"x": 1}}, map[string]any{"a": nil, "m": map[string]any{"x": nil}})
		assert.Equal(t, map[string]any{"a": 1, "m": map[string]any{"x": 1}}, merged)
	})

	t.Run("type change overrides", func(t *testing.T) {
		merged := Merge(map[string]any{"a": map[string]any{"x": 1}}, map[string]any{"a": "flat"})
		assert.Equal(t, map[string]any{"a": "flat"}, merged)
	})

	t.Run("typed slices", func(t *testing.T) {
		merged := Merge(map[string]any{"s": []string{"a"}}, map[string]any{"s": []string{"b"}})
		assert.Equal(t, []string{"a", "b"}, merged["s"])

		mixed := Merge(map[string]any{"s": []string{"a"}}, map[string]any{"s": []any{1}})
		assert.Equal(t, []any{"a", 1}, mixed["s"])
	})

	t.Run("nil maps", func(t *testing.T) {
		assert.Equal(t, map[string]any{"a": 1}, Merge(nil, map[string]any{"a": 1}))
		assert.Equal(t, map[string]any{"a": 1}, Merge(map[string]any{"a": 1}, nil))
	})

	t.Run("result does not alias source", func(t *testing.T) {
		source := map[string]any{"m": map[string]any{"x": 1}}
		merged := Merge(nil, source)
		merged["m"].(map[string]any)["x"] = 2
		assert.Equal(t, 1, source["m"].(map[string]any)["x"])
	})
}

func TestMapToCSSVars(t *testing.T) {
	tests := []struct {
		name   string
		obj    any
		prefix []string
		want   string
	}{
		{"flat", map[string]any{"primary": "#fff", "gap": 4}, nil, "--gap: 4; --primary: #fff;"},
		{"prefix", map[string]any{"primary": "#fff"}, []string{"theme-"}, "--theme-primary: #fff;"},
		{"shallow", map[string]any{"color": map[string]any{"text": "black", "bg": "white"}}, nil, "--color-bg: white; --color-text: black;"},
		{"list", map[string]any{"font": []any{"Inter", "sans-serif"}}, nil, "--font: Inter, sans-serif;"},
		{"nil skipped", map[string]any{"a": nil, "b": 1}, nil, "--b: 1;"},
		{"struct", struct {
			Width int `json:"width"`
		}{10}, nil, "--width: 10;"},
		{"empty", map[string]any{}, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapToCSSVars(tt.obj, tt.prefix...).MustUnwrap())
		})
	}
}

func TestMapToCSSVarsFailures(t *testing.T) {
	r := MapToCSSVars("color: red")
	require.True(t, r.IsErr())
	assert.EqualError(t, r.Err(), "[objects.mapToCssVars] Expected object as input")

	deep := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}
	r = MapToCSSVars(deep)
	require.True(t, r.IsErr())
	assert.EqualError(t, r.Err(), `[objects.mapToCssVars] Property "a.b" is nested more than one level`)
}
