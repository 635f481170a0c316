// File: sort.go
// Title: Path Based Sorting
// Description: SortBy orders items by the value found at a dotted path.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.2.0: Initial implementation

package slicex

import (
	"fmt"
	"slices"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/dotpath"
)

const opSortBy = "sortBy"

// SortBy returns a sorted copy of items, ordered by the value at path.
// Ties keep their original relative order. It fails on empty input, when an
// item lacks the property and when two values cannot be compared.
func SortBy[T any](items []T, path string, order ...Order) result.Result[[]T] {
	if len(items) == 0 {
		return result.Err[[]T](emptyInput(opSortBy))
	}

	type keyed struct {
		key  any
		item T
	}
	entries := make([]keyed, len(items))
	for i, item := range items {
		key, ok := dotpath.Resolve(item, path)
		if !ok || key == nil {
			return result.Err[[]T](mdwerrors.NotFound(mdwerrors.GroupCollections, opSortBy, path,
				fmt.Sprintf("Property %q not found on item %d", path, i)))
		}
		entries[i] = keyed{key: key, item: item}
	}

	for _, e := range entries[1:] {
		if _, ok := compare(entries[0].key, e.key); !ok {
			return result.Err[[]T](mdwerrors.NotComparable(mdwerrors.GroupCollections, opSortBy, entries[0].key, e.key))
		}
	}

	desc := len(order) > 0 && order[0] == OrderDesc
	slices.SortStableFunc(entries, func(a, b keyed) int {
		c, _ := compare(a.key, b.key)
		if desc {
			return -c
		}
		return c
	})

	sorted := make([]T, len(entries))
	for i, e := range entries {
		sorted[i] = e.item
	}
	return result.Ok(sorted)
}
