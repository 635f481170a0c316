// File: transform.go
// Title: Basic String Transforms
// Description: Normalization, upper and lower case, capitalization, slugs and
//              titles over untyped input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/datakit/core/result"
)

// CapitalizeMode selects which letters Capitalize upper-cases
type CapitalizeMode int

const (
	// CapitalizeFirst upper-cases the first letter of the string
	CapitalizeFirst CapitalizeMode = iota
	// CapitalizeWords upper-cases the first letter of every word
	CapitalizeWords
)

// String returns the configuration name of the mode
func (m CapitalizeMode) String() string {
	if m == CapitalizeWords {
		return "words"
	}
	return "first"
}

// ParseCapitalizeMode parses "first" or "words"
func ParseCapitalizeMode(s string) (CapitalizeMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return CapitalizeFirst, true
	case "words", "all":
		return CapitalizeWords, true
	}
	return CapitalizeFirst, false
}

var (
	nonAlnumRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	slugStrip   = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// Normalize replaces every run of characters that are neither letters nor
// digits (underscores included) by a single space and trims the result.
func Normalize(input any) result.Result[string] {
	return transform("normalize", input, normalize)
}

func normalize(s string) string {
	return strings.TrimSpace(nonAlnumRun.ReplaceAllString(s, " "))
}

// ToUpper upper-cases the input
func ToUpper(input any) result.Result[string] {
	return transform("toUpper", input, strings.ToUpper)
}

// ToLower lower-cases the input
func ToLower(input any) result.Result[string] {
	return transform("toLower", input, strings.ToLower)
}

// Capitalize upper-cases the first letter of the input, or of every
// whitespace separated word with CapitalizeWords. Other characters are kept.
func Capitalize(input any, mode ...CapitalizeMode) result.Result[string] {
	m := CapitalizeFirst
	if len(mode) > 0 {
		m = mode[0]
	}
	return transform("capitalize", input, func(s string) string {
		if m == CapitalizeWords {
			return capitalizeWords(s)
		}
		return upperFirst(s)
	})
}

// upperFirst upper-cases the first rune and keeps the remaining bytes
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case unicode.IsSpace(r):
			atWordStart = true
			b.WriteString(s[:size])
		case atWordStart:
			atWordStart = false
			b.WriteString(upperFirst(s[:size]))
		default:
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}

// ToSlug lower-cases the input, strips every character that is neither a
// word character nor whitespace (hyphens included) and joins the remaining
// words with single hyphens. Underscores are word characters and stay.
func ToSlug(input any) result.Result[string] {
	return transform("toSlug", input, func(s string) string {
		s = slugStrip.ReplaceAllString(strings.ToLower(s), "")
		return spaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
	})
}

// ToTitle normalizes the input and writes every word with an upper-case
// first letter and lower-case rest.
func ToTitle(input any) result.Result[string] {
	return transform("toTitle", input, func(s string) string {
		parts := strings.Fields(normalize(s))
		for i, p := range parts {
			parts[i] = titleWord(p)
		}
		return strings.Join(parts, " ")
	})
}

func titleWord(w string) string {
	return upperFirst(strings.ToLower(w))
}
