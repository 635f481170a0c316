// File: group.go
// Title: Path Based Grouping
// Description: GroupedByOne and GroupedByMany collect items by the value at a
//              dotted path, optionally projecting them to a subset of paths.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-02
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-02 v0.2.0: Initial implementation
// - 2026-10-17 v0.2.1: NaN keys share one group

package slicex

import (
	"fmt"
	"reflect"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/dotpath"
	"github.com/msto63/datakit/utils/typex"
)

const (
	opGroupedByOne  = "groupedByOne"
	opGroupedByMany = "groupedByMany"
)

// Group is one bucket of a grouping. Items are the source items, or their
// projections when include paths were given.
type Group struct {
	Key   any   `json:"group" yaml:"group"`
	Items []any `json:"items" yaml:"items"`
}

// GroupedByOne puts every item into the group named by its value at path.
// Groups appear in the order their key was first seen.
func GroupedByOne[T any](items []T, path string, include ...string) result.Result[[]Group] {
	return group(opGroupedByOne, items, path, include, false)
}

// GroupedByMany is GroupedByOne with fan-out: when the value at path is a
// slice, the item joins one group per distinct element.
func GroupedByMany[T any](items []T, path string, include ...string) result.Result[[]Group] {
	return group(opGroupedByMany, items, path, include, true)
}

func group[T any](operation string, items []T, path string, include []string, fanOut bool) result.Result[[]Group] {
	groups := make([]Group, 0)
	index := make(map[any]int)

	for i, item := range items {
		value, ok := dotpath.Resolve(item, path)
		if !ok {
			return result.Err[[]Group](mdwerrors.NotFound(mdwerrors.GroupCollections, operation, path,
				fmt.Sprintf("Property %q not found on item %d", path, i)))
		}

		keys := []any{value}
		if fanOut {
			keys = elements(value)
		}

		projected := project(item, include)
		joined := make(map[any]bool, len(keys))
		for _, key := range keys {
			if key != nil && !reflect.ValueOf(key).Comparable() {
				return result.Err[[]Group](mdwerrors.InvalidInput(mdwerrors.GroupCollections, operation, path,
					fmt.Sprintf("Property %q of item %d cannot be used as group key", path, i)))
			}
			id := groupID(key)
			if joined[id] {
				continue
			}
			joined[id] = true

			pos, seen := index[id]
			if !seen {
				pos = len(groups)
				index[id] = pos
				groups = append(groups, Group{Key: key})
			}
			groups[pos].Items = append(groups[pos].Items, projected)
		}
	}
	return result.Ok(groups)
}

// nanKey stands in for every NaN key, which never equals itself
type nanKey struct{}

// groupID maps a group key to its index key. All NaNs share one group.
func groupID(key any) any {
	if typex.IsNaN(key) {
		return nanKey{}
	}
	return key
}

// elements spreads a slice or array into its elements; any other value is a
// single key.
func elements(value any) []any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// project copies the values at the include paths into a fresh map, keeping
// their nesting. Paths the item lacks are left out.
func project(item any, include []string) any {
	if len(include) == 0 {
		return item
	}
	out := make(map[string]any, len(include))
	for _, path := range include {
		if value, ok := dotpath.Resolve(item, path); ok {
			dotpath.Set(out, path, value)
		}
	}
	return out
}
