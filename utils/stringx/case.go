// File: case.go
// Title: String Case Conversion
// Description: snake_case, kebab-case, camelCase and PascalCase conversion
//              built on one word splitter, plus camelCase to snake and kebab
//              conversion by upper-case boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Shared word splitter, Result based signatures

package stringx

import (
	"strings"
	"unicode"

	"github.com/msto63/datakit/core/result"
)

// words splits s on runs of characters that are neither letters nor digits
func words(s string) []string {
	parts := nonAlnumRun.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinWords(s, sep string, casing func(i int, w string) string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = casing(i, w)
	}
	return strings.Join(parts, sep)
}

func lowerWord(_ int, w string) string { return strings.ToLower(w) }

// ToSnakeCase converts "Hello big World" to "hello_big_world"
func ToSnakeCase(input any) result.Result[string] {
	return transform("toSnakeCase", input, func(s string) string {
		return joinWords(s, "_", lowerWord)
	})
}

// ToKebabCase converts "Hello big World" to "hello-big-world"
func ToKebabCase(input any) result.Result[string] {
	return transform("toKebabCase", input, func(s string) string {
		return joinWords(s, "-", lowerWord)
	})
}

// ToCamelCase converts "foo-bar-baz" to "fooBarBaz"
func ToCamelCase(input any) result.Result[string] {
	return transform("toCamelCase", input, func(s string) string {
		return joinWords(s, "", func(i int, w string) string {
			if i == 0 {
				return strings.ToLower(w)
			}
			return titleWord(w)
		})
	})
}

// ToPascalCase converts "foo-bar-baz" to "FooBarBaz"
func ToPascalCase(input any) result.Result[string] {
	return transform("toPascalCase", input, func(s string) string {
		return joinWords(s, "", func(_ int, w string) string { return titleWord(w) })
	})
}

// CamelToSnake converts "helloWorld" to "hello_world"
func CamelToSnake(input any) result.Result[string] {
	return transform("camelToSnake", input, func(s string) string {
		return splitCamel(s, '_')
	})
}

// CamelToKebab converts "helloWorld" to "hello-world"
func CamelToKebab(input any) result.Result[string] {
	return transform("camelToKebab", input, func(s string) string {
		return splitCamel(s, '-')
	})
}

// splitCamel inserts sep before every upper-case letter except at the start
// and lower-cases that letter.
func splitCamel(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(sep)
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
