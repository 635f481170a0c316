// File: extract.go
// Title: Lists and Extraction
// Description: Comma list detection and conversion, marker based substring
//              extraction and first occurrence removal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
)

// CommaSeparator joins list items in ToCommaList
const CommaSeparator = ", "

func splitCommaList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsCommaList reports whether the input holds at least two non-empty comma
// separated items.
func IsCommaList(input any) result.Result[bool] {
	return result.Map(AsString("isCommaList", input), func(s string) bool {
		return len(splitCommaList(s)) > 1
	})
}

// CommaListToSlice splits a comma list into trimmed, non-empty items
func CommaListToSlice(input any) result.Result[[]string] {
	return result.Map(AsString("commaListToSlice", input), func(s string) []string {
		items := splitCommaList(s)
		if items == nil {
			return []string{}
		}
		return items
	})
}

// ToCommaList joins a slice of strings or scalars with ", ". Blank items are
// dropped. A single string is passed through as a one item list.
func ToCommaList(input any) result.Result[string] {
	if s, ok := input.(string); ok {
		return result.Ok(strings.Join(splitCommaList(s), CommaSeparator))
	}

	rv := reflect.ValueOf(input)
	if input == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return result.Err[string](mdwerrors.InvalidType(mdwerrors.GroupStrings, "toCommaList", input, "string array"))
	}

	items := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		switch item.(type) {
		case nil, map[string]any, []any:
			return result.Err[string](mdwerrors.InvalidType(mdwerrors.GroupStrings, "toCommaList", input, "string array"))
		}
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
			items = append(items, s)
		}
	}
	return result.Ok(strings.Join(items, CommaSeparator))
}

// TextBetween returns the first text enclosed by start and end. Markers are
// matched literally. No match yields an empty string; empty markers fail.
func TextBetween(input any, start, end string) result.Result[string] {
	return result.AndThen(AsString("textBetween", input), func(s string) result.Result[string] {
		if start == "" || end == "" {
			return result.Err[string](mdwerrors.InvalidInput(mdwerrors.GroupStrings, "textBetween",
				start+"|"+end, "Expected non-empty start and end markers"))
		}
		re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `(.*?)` + regexp.QuoteMeta(end))
		match := re.FindStringSubmatch(s)
		if match == nil {
			return result.Ok("")
		}
		return result.Ok(match[1])
	})
}

// RemoveFirst removes the first occurrence of target. With trim set, the
// spaces around the removed text collapse into one.
func RemoveFirst(input any, target string, trim ...bool) result.Result[string] {
	collapse := len(trim) > 0 && trim[0]
	return transform("removeFirst", input, func(s string) string {
		idx := strings.Index(s, target)
		if target == "" || idx < 0 {
			return s
		}
		left, right := s[:idx], s[idx+len(target):]
		if !collapse {
			return left + right
		}
		left = strings.TrimRight(left, " \t")
		right = strings.TrimLeft(right, " \t")
		if left == "" || right == "" {
			return left + right
		}
		return left + " " + right
	})
}
