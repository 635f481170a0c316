package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "sort failed")
	e.Timestamp = time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	e.Logger = "datakit"
	e.Command = "collections sort"
	e.WithFields(Fields{"path": "weight", "count": 3})
	return e
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("[collections.sortBy] boom").WithCode(mdwerror.CodeNotFound)
	entry.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(entry)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &data))
	assert.Equal(t, "warn", data["level"])
	assert.Equal(t, "sort failed", data["message"])
	assert.Equal(t, "collections sort", data["command"])
	assert.Equal(t, "weight", data["path"])
	assert.Equal(t, "[collections.sortBy] boom", data["error"])
	assert.InDelta(t, 1.5, data["duration_ms"], 0.0001)

	details, ok := data["error_details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", details["code"])
}

func TestJSONFormatterStringifiesErrorFields(t *testing.T) {
	entry := testEntry().WithFields(Err(errors.New("plain")))

	out, err := NewJSONFormatter().Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"error":"plain"`)
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	require.NoError(t, err)

	assert.Equal(t,
		"10:30:00 [WRN] {datakit} (collections sort) sort failed [count=3 path=weight]\n",
		string(out))
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(testEntry())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), LevelWarn.Color()))
	assert.True(t, strings.HasSuffix(string(out), colorReset+"\n"))

	f.DisableColors = true
	plain, err := f.Format(testEntry())
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "\033[")
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Fields["note"] = "two words"

	out, err := NewLogfmtFormatter().Format(entry)
	require.NoError(t, err)

	assert.Equal(t,
		`timestamp=2026-09-14T10:30:00Z level=warn message="sort failed" logger=datakit command="collections sort" count=3 note="two words" path=weight`+"\n",
		string(out))
}

func TestGetFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, GetFormatter(FormatJSON))
	assert.IsType(t, &TextFormatter{}, GetFormatter(FormatText))
	assert.IsType(t, &ConsoleFormatter{}, GetFormatter(FormatConsole))
	assert.IsType(t, &LogfmtFormatter{}, GetFormatter(FormatLogfmt))
	assert.IsType(t, &JSONFormatter{}, GetFormatter(Format(42)))
}
