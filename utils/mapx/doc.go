// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides the datakit object property utilities:
//              property existence and value checks, safe nested lookup, deep
//              merging and CSS custom property serialisation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-02 v0.3.0: Object semantics over maps and structs, Result based checks

// Package mapx provides object property utilities for datakit.
//
// An object is a map with string keys or a struct. Struct properties are the
// exported fields, including the promoted fields of embedded structs, named by
// their json or yaml tag when one is present:
//
//	type Base struct{ ID string `json:"id"` }
//	type Post struct {
//		Base
//		Title string `json:"title"`
//	}
//
//	mapx.HasProperty(Post{}, "id")          // Ok(true)
//	mapx.HasProperty("text", "id")          // Err([objects.hasProperty] Expected object as input)
//	mapx.GetPropertyValue(doc, "a.b.c")     // nil when any segment is missing
//
// Merge combines two decoded documents: maps merge key by key, slices are
// concatenated, scalars from the source win and nil never erases a value.
//
//	mapx.Merge(
//		map[string]any{"a": 1, "b": map[string]any{"c": []any{2, 3}}},
//		map[string]any{"a": 2, "b": map[string]any{"c": []any{4, 5}}},
//	) // {a:2 b:{c:[2 3 4 5]}}
package mapx
