// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads datakit settings from TOML or YAML files,
//              applies defaults and DATAKIT_ environment overrides and binds
//              sections to structs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Dotted keys resolved through utils/dotpath, reload

/*
Package config provides configuration management for datakit.

Key Features:
  - TOML and YAML files with detection by extension
  - Defaults merged underneath file values, section by section
  - Environment overrides: with prefix "DATAKIT" the key log.level is read
    from DATAKIT_LOG_LEVEL
  - Dot-notation getters with optional fallbacks
  - Discovery of datakit.toml, datakit.yaml or datakit.yml
  - BindToStruct for sections and arrays of tables
  - Reload when the file on disk changed

# Loading

	cfg, err := mdwconfig.LoadWithOptions("datakit.toml", mdwconfig.LoadOptions{
		EnvPrefix: "DATAKIT",
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "info"},
		},
	})
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "info")

# Discovery

	cfg, err := mdwconfig.Discover(mdwconfig.DefaultDiscoveryOptions())

Without a file and with Required unset, Discover returns an empty
configuration that still honours defaults and environment overrides.

# Binding

	type ImageSettings struct {
		Folder string `config:"folder"`
		Name   string `config:"name"`
	}

	var images ImageSettings
	if err := cfg.BindToStruct("images", &images); err != nil {
		return err
	}

All errors are *mdwerror.Error values with configuration codes.
*/
package config
