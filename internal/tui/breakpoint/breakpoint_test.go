package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
)

func TestDefaults(t *testing.T) {
	c, err := New(Defaults())
	require.NoError(t, err)

	tests := []struct {
		width int
		want  string
	}{
		{0, "sm"},
		{79, "sm"},
		{80, "md"},
		{119, "md"},
		{120, "lg"},
		{400, "lg"},
	}
	for _, tt := range tests {
		c.Update(tt.width)
		b, ok := c.Current()
		require.True(t, ok, "width %d", tt.width)
		assert.Equal(t, tt.want, b.Name, "width %d", tt.width)
		assert.True(t, c.Is(tt.want))
	}
}

func TestUpdateReportsChanges(t *testing.T) {
	c, err := New(Defaults())
	require.NoError(t, err)

	_, ok := c.Current()
	assert.False(t, ok)

	assert.True(t, c.Update(60))
	assert.False(t, c.Update(70))
	assert.True(t, c.Update(100))
	assert.Equal(t, 100, c.Width())
}

func TestGapsAndOrdering(t *testing.T) {
	c, err := New([]Breakpoint{
		{Name: "wide", Min: 100},
		{Name: "narrow", Min: 10, Max: 50},
	})
	require.NoError(t, err)

	assert.Equal(t, "narrow", c.Breakpoints()[0].Name)

	c.Update(70)
	_, ok := c.Current()
	assert.False(t, ok)
	assert.False(t, c.Is("wide"))

	assert.True(t, c.Matches("wide", 100))
	assert.False(t, c.Matches("narrow", 50))
	assert.False(t, c.Matches("unknown", 10))
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		bps  []Breakpoint
	}{
		{"empty", nil},
		{"no name", []Breakpoint{{Min: 0}}},
		{"duplicate", []Breakpoint{{Name: "a"}, {Name: "a", Min: 10}}},
		{"negative", []Breakpoint{{Name: "a", Min: -1}}},
		{"inverted", []Breakpoint{{Name: "a", Min: 50, Max: 20}}},
		{"zero width", []Breakpoint{{Name: "a", Min: 20, Max: 20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bps)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "md 80-119", Breakpoint{Name: "md", Min: 80, Max: 120}.String())
	assert.Equal(t, "lg 120+", Breakpoint{Name: "lg", Min: 120}.String())
}
