package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/utils/slicex"
)

func newRenderer(t *testing.T, width int, asJSON bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r, err := New(Options{Out: out, Err: errOut, JSON: asJSON, Width: width})
	require.NoError(t, err)
	return r, out, errOut
}

func TestLayoutFollowsWidth(t *testing.T) {
	narrow, _, _ := newRenderer(t, 60, false)
	assert.Equal(t, "sm", narrow.Layout())
	assert.True(t, narrow.Compact())

	wide, _, _ := newRenderer(t, 140, false)
	assert.Equal(t, "lg", wide.Layout())
	assert.False(t, wide.Compact())
}

func TestNonTerminalWidth(t *testing.T) {
	assert.Equal(t, 42, TerminalWidth(&bytes.Buffer{}, 42))

	r, err := New(Options{Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, "md", r.Layout())
}

func TestInvalidBreakpoints(t *testing.T) {
	_, err := New(Options{Out: &bytes.Buffer{}, Breakpoints: []breakpoint.Breakpoint{{Name: "x", Min: 5, Max: 1}}})
	assert.Error(t, err)
}

func TestValueText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "bread-and-butter", "bread-and-butter\n"},
		{"number", 42, "42\n"},
		{"nil", nil, "null\n"},
		{"list", []string{"a", "b"}, "a\nb\n"},
		{"object", map[string]any{"b": 2, "a": 1}, "a: 1\nb: 2\n"},
		{"nested list", []any{map[string]any{"a": 1}}, "- a: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _ := newRenderer(t, 100, false)
			require.NoError(t, r.Value(tt.value))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestValueJSON(t *testing.T) {
	r, out, _ := newRenderer(t, 100, true)
	require.NoError(t, r.Value([]int{1, 2}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, []any{1.0, 2.0}, decoded["value"])
}

func TestTable(t *testing.T) {
	rows := []Row{{"isString", true}, {"isEmpty", false}}

	wide, out, _ := newRenderer(t, 100, false)
	require.NoError(t, wide.Table(rows))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "isString  true", lines[0])
	assert.Equal(t, "isEmpty   false", lines[1])

	narrow, out, _ := newRenderer(t, 40, false)
	require.NoError(t, narrow.Table(rows))
	assert.Equal(t, "isString\n  true\nisEmpty\n  false\n", out.String())
}

func TestGroups(t *testing.T) {
	r, out, _ := newRenderer(t, 100, false)
	groups := []slicex.Group{
		{Key: "tag_1", Items: []any{map[string]any{"title": "first"}, map[string]any{"title": "second"}}},
	}
	require.NoError(t, r.Groups(groups))
	assert.Equal(t, "tag_1 (2)\n  - title: first\n  - title: second\n", out.String())
}

func TestFailure(t *testing.T) {
	err := mdwerrors.InvalidType(mdwerrors.GroupStrings, "toSlug", 42, "string value")

	r, _, errOut := newRenderer(t, 100, false)
	r.Failure(err)
	assert.Equal(t, "Fehler: [strings.toSlug] Expected string value as input\n", errOut.String())

	j, _, errOut := newRenderer(t, 100, true)
	j.Failure(err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &decoded))
	assert.Equal(t, false, decoded["ok"])
	assert.Equal(t, "INVALID_INPUT", decoded["code"])
}

func TestPrint(t *testing.T) {
	r, out, _ := newRenderer(t, 100, false)
	require.NoError(t, Print(r, result.Ok("fine")))
	assert.Equal(t, "fine\n", out.String())

	failure := result.Err[string](mdwerrors.InvalidInput(mdwerrors.GroupCLI, "print", nil, "broken"))
	assert.EqualError(t, Print(r, failure), "[cli.print] broken")
}
