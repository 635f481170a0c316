// File: image.go
// Title: Image Paths
// Description: Default and composed image paths with configurable folder
//              and file name fallbacks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-20
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-20 v0.1.0: Initial implementation

package urlx

import "path"

const (
	DefaultImageFolder     = "/images"
	DefaultImageName       = "default.jpg"
	DefaultSocialImageName = "social.jpg"
)

// ImageDefaults holds the fallbacks used when building image paths. Empty
// fields fall back to the package defaults.
type ImageDefaults struct {
	Folder string `config:"folder"`
	Name   string `config:"name"`
	Social string `config:"social"`
}

// Default returns the default image inside folder, or inside the configured
// folder when folder is empty
func (d ImageDefaults) Default(folder ...string) string {
	return path.Join(d.folder(folder), or(d.Name, DefaultImageName))
}

// SocialDefault returns the default social sharing image
func (d ImageDefaults) SocialDefault(folder ...string) string {
	return path.Join(d.folder(folder), or(d.Social, DefaultSocialImageName))
}

// Path joins folder and filename, falling back to Default without a filename
func (d ImageDefaults) Path(folder, filename string) string {
	if filename == "" {
		return d.Default(folder)
	}
	return path.Join(d.folder([]string{folder}), filename)
}

func (d ImageDefaults) folder(override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return or(d.Folder, DefaultImageFolder)
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// DefaultImage returns "/images/default.jpg", or default.jpg inside folder
func DefaultImage(folder ...string) string {
	return ImageDefaults{}.Default(folder...)
}

// DefaultSocialImage returns "/images/social.jpg", or social.jpg inside folder
func DefaultSocialImage(folder ...string) string {
	return ImageDefaults{}.SocialDefault(folder...)
}

// MakeImagePath joins folder and filename. An empty filename yields
// DefaultImage(folder); an empty folder uses DefaultImageFolder.
func MakeImagePath(folder, filename string) string {
	return ImageDefaults{}.Path(folder, filename)
}
