// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     cmd
// Description: Configuration settings of the datakit CLI
// Author:      Mike Stoffels
// Created:     2026-09-23
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/datakit/core/config"
	"github.com/msto63/datakit/internal/tui/breakpoint"
	"github.com/msto63/datakit/utils/stringx"
	"github.com/msto63/datakit/utils/urlx"
)

// Settings is the bound configuration of the CLI
type Settings struct {
	Log struct {
		Level  string `config:"level"`
		Format string `config:"format"`
	} `config:"log"`

	Strings struct {
		Capitalize string `config:"capitalize"`
	} `config:"strings"`

	CSS struct {
		Prefix string `config:"prefix"`
	} `config:"css"`

	Images      urlx.ImageDefaults      `config:"images"`
	Breakpoints []breakpoint.Breakpoint `config:"breakpoints"`
}

// CapitalizeMode returns the configured mode, falling back to "first"
func (s Settings) CapitalizeMode() stringx.CapitalizeMode {
	mode, _ := stringx.ParseCapitalizeMode(s.Strings.Capitalize)
	return mode
}

func defaultSettings() map[string]interface{} {
	breakpoints := make([]interface{}, 0, len(breakpoint.Defaults()))
	for _, b := range breakpoint.Defaults() {
		breakpoints = append(breakpoints, map[string]interface{}{
			"name": b.Name,
			"min":  b.Min,
			"max":  b.Max,
		})
	}

	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "console",
		},
		"strings": map[string]interface{}{
			"capitalize": "first",
		},
		"css": map[string]interface{}{
			"prefix": "",
		},
		"images": map[string]interface{}{
			"folder": urlx.DefaultImageFolder,
			"name":   urlx.DefaultImageName,
			"social": urlx.DefaultSocialImageName,
		},
		"breakpoints": breakpoints,
	}
}

// loadConfig reads path when given and discovers a datakit file otherwise
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "DATAKIT",
			Defaults:  defaultSettings(),
		})
	}
	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = defaultSettings()
	return config.Discover(opts)
}

// settingsRules lists the values the CLI understands for its enumerated keys
var settingsRules = config.ValidationRules{
	"log.level": {Type: "string", OneOf: []string{
		"trace", "trc", "debug", "dbg", "info", "inf", "warn", "wrn", "warning",
		"error", "err", "fatal", "ftl", "audit", "aud",
	}},
	"log.format":         {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	"strings.capitalize": {Type: "string", OneOf: []string{"first", "words", "all"}},
}

// bindSettings validates cfg and binds it. Environment overrides count for
// both steps.
func bindSettings(cfg *config.Config) (Settings, error) {
	if err := cfg.Validate(settingsRules).Err(); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := cfg.BindToStruct("", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
