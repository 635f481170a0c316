// File: stringx.go
// Title: Core String Helpers
// Description: Plain string helpers and the input checks shared by all
//              Result based transforms.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Reduced to the helpers used across datakit

package stringx

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
)

const expectedString = "string value"

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// PadLeft pads s on the left with pad up to width runes
func PadLeft(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(pad), missing) + s
}

// Truncate shortens s to maxLen runes, ending with ellipsis when cut. An
// ellipsis that does not fit is dropped.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	keep := maxLen - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string(runes[:maxLen])
	}
	return string(runes[:keep]) + ellipsis
}

// AsString extracts a string from untyped input. Named string types are
// accepted; everything else fails under the given operation name.
func AsString(operation string, input any) result.Result[string] {
	if s, ok := input.(string); ok {
		return result.Ok(s)
	}
	if input != nil {
		if rv := reflect.ValueOf(input); rv.Kind() == reflect.String {
			return result.Ok(rv.String())
		}
	}
	return result.Err[string](mdwerrors.InvalidType(mdwerrors.GroupStrings, operation, input, expectedString))
}

func transform(operation string, input any, fn func(string) string) result.Result[string] {
	return result.Map(AsString(operation, input), fn)
}
