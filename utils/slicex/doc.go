// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides the datakit collection operations:
//              sorting and grouping by dotted paths, shuffling, random
//              sampling, membership tests and de-duplication.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-02 v0.2.0: Path based sorting and grouping on Result, lo backed helpers

// Package slicex provides collection operations for datakit.
//
// Elements are addressed through dotted paths resolved by package dotpath, so
// the same call works for decoded documents and for structs:
//
//	menu := []map[string]any{
//		{"id": "home", "weight": 1},
//		{"id": "contact", "weight": 4},
//		{"id": "about", "weight": 2},
//	}
//	sorted := slicex.SortBy(menu, "weight")             // home, about, contact
//	desc := slicex.SortBy(menu, "weight", slicex.OrderDesc)
//
// Grouping comes in two flavours. GroupedByOne puts every item into exactly
// one group; GroupedByMany fans an item out into one group per element when
// the addressed value is a slice:
//
//	groups := slicex.GroupedByMany(posts, "meta.tags")
//	// [{tag_1 [post1 post2]} {tag_2 [post1]}]
//
// Operations that can fail return result.Result and report failures under
// the "collections" group, e.g. "[collections.sortBy] ...". None of them
// mutates its input.
package slicex
