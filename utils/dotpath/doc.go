// File: doc.go
// Title: Package Documentation for dotpath
// Description: Package dotpath resolves dotted property paths such as
//              "address.state" or "meta.tags.0" against maps, structs and
//              slices. It is the single lookup primitive shared by the
//              collection, object and configuration packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

// Package dotpath resolves dotted property paths.
//
// A path is split on "." and every segment is applied in turn:
//
//   - maps with string keys are indexed by the segment
//   - structs are searched by field name, json tag, yaml tag and finally by a
//     case-insensitive field name; promoted fields of embedded structs count
//   - slices and arrays accept a decimal index
//   - pointers and interfaces are dereferenced, nil stops the walk
//
// Resolve distinguishes a present nil value (nil, true) from a missing
// property (nil, false):
//
//	doc := map[string]any{"address": map[string]any{"state": "QLD"}}
//	v, ok := dotpath.Resolve(doc, "address.state") // "QLD", true
//	_, ok = dotpath.Resolve(doc, "address.zip")    // nil, false
package dotpath
