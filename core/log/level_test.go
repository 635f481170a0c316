package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"DBG", LevelDebug},
		{" info ", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{"err", LevelError},
		{"fatal", LevelFatal},
		{"audit", LevelAudit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	lvl, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, LevelInfo, lvl)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestLevelNames(t *testing.T) {
	for _, lvl := range AllLevels() {
		parsed, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, parsed)

		short, err := ParseLevel(lvl.ShortString())
		require.NoError(t, err)
		assert.Equal(t, lvl, short)
	}
	assert.Equal(t, "unknown", Level(99).String())
	assert.Equal(t, "???", Level(99).ShortString())
}

func TestShouldLog(t *testing.T) {
	assert.True(t, LevelError.ShouldLog(LevelWarn))
	assert.False(t, LevelDebug.ShouldLog(LevelInfo))
	assert.True(t, LevelAudit.ShouldLog(LevelFatal))
}
