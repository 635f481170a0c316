package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
)

const sampleTOML = `
[log]
level = "debug"
format = "json"

[css]
prefix = "dk-"

[images]
folder = "/assets"

[[breakpoints]]
name = "narrow"
min = 0
max = 60

[[breakpoints]]
name = "wide"
min = 60
`

const sampleYAML = `
log:
  level: warn
strings:
  capitalize: words
tags: [a, b]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "datakit.toml", sampleTOML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatTOML, cfg.Format())
	assert.Equal(t, path, cfg.FilePath())
	assert.Equal(t, "debug", cfg.GetString("log.level"))
	assert.Equal(t, "dk-", cfg.GetString("css.prefix"))
	assert.Equal(t, "fallback", cfg.GetString("css.missing", "fallback"))
	assert.True(t, cfg.Has("images.folder"))
	assert.False(t, cfg.Has("images.name"))
	assert.Equal(t, 60, cfg.GetInt("breakpoints.0.max"))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "datakit.yml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, "warn", cfg.GetString("log.level"))
	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("tags"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("  ")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingConfig))

	_, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingConfig))

	path := writeFile(t, t.TempDir(), "broken.toml", "[log\nlevel=")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestDefaultsMergeBySection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "datakit.toml", sampleTOML)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{
			"images": map[string]interface{}{"folder": "/images", "name": "default.jpg"},
			"log":    map[string]interface{}{"level": "info"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/assets", cfg.GetString("images.folder"))
	assert.Equal(t, "default.jpg", cfg.GetString("images.name"))
	assert.Equal(t, "debug", cfg.GetString("log.level"))
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg := Empty("DATAKIT", map[string]interface{}{
		"log": map[string]interface{}{"level": "info"},
	})
	assert.Equal(t, "DATAKIT_LOG_LEVEL", cfg.EnvKey("log.level"))

	t.Setenv("DATAKIT_LOG_LEVEL", "trace")
	t.Setenv("DATAKIT_CSS_PREFIX", "x-")
	t.Setenv("DATAKIT_LIMIT", "12")
	t.Setenv("DATAKIT_COLOR", "false")
	t.Setenv("DATAKIT_TAGS", "a, b,,c")

	assert.Equal(t, "trace", cfg.GetString("log.level"))
	assert.True(t, cfg.Has("css.prefix"))
	assert.Equal(t, 12, cfg.GetInt("limit"))
	assert.False(t, cfg.GetBool("color", true))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetStringSlice("tags"))
}

func TestEnvironmentIgnoredWithoutPrefix(t *testing.T) {
	cfg, err := LoadFromString(`name = "file"`, FormatAuto)
	require.NoError(t, err)

	t.Setenv("NAME", "env")
	assert.Equal(t, "file", cfg.GetString("name"))
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty("", nil)
	cfg.Set("a.b", 1.5)
	cfg.Set("flag", "true")

	assert.InDelta(t, 1.5, cfg.GetFloat("a.b"), 0.0001)
	assert.True(t, cfg.GetBool("flag"))

	all := cfg.GetAll()
	all["a"].(map[string]interface{})["b"] = 99
	assert.InDelta(t, 1.5, cfg.GetFloat("a.b"), 0.0001)
	assert.Contains(t, cfg.String(), "keys: 2")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{Paths: []string{dir}, EnvPrefix: "DATAKIT"}

	cfg, err := Discover(options)
	require.NoError(t, err)
	assert.Empty(t, cfg.FilePath())

	options.Required = true
	_, err = Discover(options)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingConfig))

	path := writeFile(t, dir, "datakit.yaml", sampleYAML)
	cfg, err = Discover(options)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.FilePath())
}

func TestListPossibleConfigFiles(t *testing.T) {
	files := ListPossibleConfigFiles(DiscoveryOptions{Paths: []string{"/etc"}})
	assert.Equal(t, []string{"/etc/datakit.toml", "/etc/datakit.yaml", "/etc/datakit.yml"}, files)

	def := DefaultDiscoveryOptions()
	assert.Equal(t, ".", def.Paths[0])
	assert.Equal(t, "DATAKIT", def.EnvPrefix)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "datakit.toml", "[log]\nlevel = \"info\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	changed, err := cfg.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	var notified int
	cfg.OnChange(func(*Config) { notified++ })

	writeFile(t, dir, "datakit.toml", "[log]\nlevel = \"error\"\n")
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	changed, err = cfg.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, notified)
	assert.Equal(t, "error", cfg.GetString("log.level"))

	changed, err = Empty("", nil).Reload()
	assert.NoError(t, err)
	assert.False(t, changed)
}
