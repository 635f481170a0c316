// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     playground
// Description: String operations offered in the playground
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/stringx"
	"github.com/msto63/datakit/utils/typex"
)

// Operation is one selectable transform
type Operation struct {
	Name  string
	Apply func(input string) result.Result[string]
}

// Operations returns the transforms in menu order. mode selects the
// behaviour of "capitalize".
func Operations(mode stringx.CapitalizeMode) []Operation {
	wrap := func(fn func(any) result.Result[string]) func(string) result.Result[string] {
		return func(s string) result.Result[string] { return fn(s) }
	}
	return []Operation{
		{"slug", wrap(stringx.ToSlug)},
		{"title", wrap(stringx.ToTitle)},
		{"capitalize", func(s string) result.Result[string] { return stringx.Capitalize(s, mode) }},
		{"normalize", wrap(stringx.Normalize)},
		{"upper", wrap(stringx.ToUpper)},
		{"lower", wrap(stringx.ToLower)},
		{"snake", wrap(stringx.ToSnakeCase)},
		{"kebab", wrap(stringx.ToKebabCase)},
		{"camel", wrap(stringx.ToCamelCase)},
		{"pascal", wrap(stringx.ToPascalCase)},
		{"camel-to-snake", wrap(stringx.CamelToSnake)},
		{"camel-to-kebab", wrap(stringx.CamelToKebab)},
		{"comma-list", wrap(stringx.ToCommaList)},
		{"kind", func(s string) result.Result[string] {
			return result.Ok(string(typex.KindOf(s)))
		}},
	}
}
