// File: path.go
// Title: Lexical Path Analysis
// Description: Directory, file, name and extension analysis of path shaped
//              strings with Unix and Windows separators. Nothing here reads
//              the file system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-20
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-20 v0.1.0: Initial implementation, image extensions from filex

package urlx

import (
	"regexp"
	"slices"
	"strings"
)

var (
	separatorRun      = regexp.MustCompile(`[/\\]+`)
	trailingSeparator = regexp.MustCompile(`[/\\]+$`)
)

var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif",
	".svg", ".webp", ".ico", ".psd", ".raw", ".avif",
}

// LastSegment returns the last non-empty segment of p
func LastSegment(p string) string {
	segments := separatorRun.Split(p, -1)
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// Extension returns the extension of the last segment of p including the
// dot, or "" when it has none. Leading dots of hidden files do not count.
func Extension(p string) string {
	if trailingSeparator.MatchString(p) {
		return ""
	}
	name := LastSegment(p)
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return ""
	}
	return name[dot:]
}

// IsFile reports whether p names a file, i.e. its last segment has an
// extension
func IsFile(p string) bool {
	return Extension(p) != ""
}

// IsDir reports whether p names a directory: it ends with a separator or its
// last segment has no extension
func IsDir(p string) bool {
	return strings.TrimSpace(p) != "" && !IsFile(p)
}

// Filename returns the last segment of p when p names a file
func Filename(p string) string {
	if !IsFile(p) {
		return ""
	}
	return LastSegment(p)
}

// Dirname returns p without its last segment and trailing separators. A path
// directly below the root yields the root separator.
func Dirname(p string) string {
	trimmed := trailingSeparator.ReplaceAllString(p, "")
	cut := strings.LastIndexAny(trimmed, `/\`)
	if cut < 0 {
		return ""
	}
	dir := trailingSeparator.ReplaceAllString(trimmed[:cut], "")
	if dir == "" {
		return trimmed[:1]
	}
	return dir
}

// IsImage reports whether p ends in a known image extension, ignoring case
func IsImage(p string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(Extension(p)))
}
