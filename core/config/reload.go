// File: reload.go
// Title: Configuration Reloading
// Description: Re-reads the configuration file when it changed on disk and
//              notifies registered handlers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Polling watcher
// - 2026-10-02 v0.2.0: Explicit Reload driven by the caller

package config

import (
	"os"

	mdwerror "github.com/msto63/datakit/core/error"
)

// ChangeHandler is called after a successful reload
type ChangeHandler func(cfg *Config)

// OnChange registers a handler called after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Reload re-reads the file if its modification time moved. It reports
// whether new data was loaded. Configurations without file never reload.
func (c *Config) Reload() (bool, error) {
	c.mu.RLock()
	path, format, last := c.filePath, c.format, c.lastModified
	c.mu.RUnlock()

	if path == "" {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, mdwerror.Wrap(err, "failed to stat config file during reload").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Reload").
			WithDetail("filePath", path)
	}
	if !info.ModTime().After(last) {
		return false, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Reload").
			WithDetail("filePath", path)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return false, mdwerror.Wrap(err, "failed to parse config file during reload").
			WithOperation("config.Reload").
			WithDetail("filePath", path)
	}

	c.mu.Lock()
	c.data = mergeDefaults(data, c.defaults)
	c.lastModified = info.ModTime()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(c)
	}
	return true, nil
}
