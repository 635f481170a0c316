// File: standards.go
// Title: Failure Standards for datakit
// Description: Group identifiers and the namespace format shared by every
//              utility group.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Replaced module codes by group namespaces
// - 2026-10-17 v0.2.1: Shortened inputs keep whole runes

package errors

import "fmt"

// Group identifiers used as the first part of every failure namespace
const (
	GroupTypes       = "types"
	GroupStrings     = "strings"
	GroupCollections = "collections"
	GroupObjects     = "objects"
	GroupURLs        = "urls"
	GroupDates       = "dates"
	GroupConfig      = "config"
	GroupCLI         = "cli"
)

// Detail keys attached to every failure
const (
	DetailGroup     = "group"
	DetailOperation = "operation"
	DetailInput     = "input"
)

// Namespace returns the "[group.operation]" prefix of a failure message
func Namespace(group, operation string) string {
	if operation == "" {
		return fmt.Sprintf("[%s]", group)
	}
	return fmt.Sprintf("[%s.%s]", group, operation)
}

// maxDescribedLen caps string inputs kept in error details, in bytes
const maxDescribedLen = 64

// truncateRunes cuts s to at most limit bytes without splitting a rune
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := 0
	for i := range s {
		if i > limit {
			break
		}
		cut = i
	}
	return s[:cut] + "..."
}

// describe renders an input for error details without keeping large values alive
func describe(input interface{}) interface{} {
	switch v := input.(type) {
	case nil:
		return nil
	case string:
		return truncateRunes(v, maxDescribedLen)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	default:
		return fmt.Sprintf("%T", input)
	}
}
