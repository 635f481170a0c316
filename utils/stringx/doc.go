// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the datakit string transforms: case
//              conversion, slugs and titles, comma lists and marker based
//              extraction. Every transform accepts untyped input and reports
//              non-string input as a failed Result.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Result based transforms on untyped input

// Package stringx provides string transforms for datakit.
//
// Transforms take `input any` because their inputs usually come from decoded
// YAML or JSON documents or from command line arguments. A non-string input
// never panics; it yields a failure whose message names the transform:
//
//	slug := stringx.ToSlug("Bread And Butter") // Ok("bread-and-butter")
//	bad := stringx.ToSlug(42)
//	bad.Err() // [strings.toSlug] Expected string value as input
//
// Case conversions split on every run of characters that are neither letters
// nor digits and rejoin the words with a per-target rule:
//
//	ToSnakeCase("Hello big World")  // hello_big_world
//	ToKebabCase("Hello big World")  // hello-big-world
//	ToCamelCase("foo-bar-baz")      // fooBarBaz
//	ToPascalCase("foo-bar-baz")     // FooBarBaz
//
// CamelToSnake and CamelToKebab instead insert a separator before every
// upper-case letter, so ToCamelCase(CamelToSnake(x)) returns x for camelCase
// identifiers.
//
// The plain string helpers IsBlank, PadLeft and Truncate are shared by the
// configuration, date and terminal packages.
package stringx
