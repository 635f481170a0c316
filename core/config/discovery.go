// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for datakit configuration
//              files and loads the first match.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: datakit file names, user config directory, optional result

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/datakit/core/error"
)

// DiscoveryOptions defines where Discover looks
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for datakit.toml, datakit.yaml and datakit.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "datakit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"datakit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "DATAKIT",
	}
}

// Discover loads the first configuration file found. Without a match it
// fails when Required is set and returns Empty otherwise.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"datakit"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := make([]string, 0, len(paths)*len(filenames)*len(extensions))
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}
