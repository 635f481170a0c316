// File: slicex.go
// Title: Core Collection Utilities
// Description: Sort order, value comparison and the lo backed membership
//              and de-duplication helpers.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-02 v0.2.0: Reduced to datakit collection semantics
// - 2026-10-17 v0.2.1: Deep equality for unhashable values, exact integer order

package slicex

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/samber/lo"

	mdwerrors "github.com/msto63/datakit/core/errors"
)

const opParseOrder = "parseOrder"

// Order selects the direction of SortBy
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder parses "asc" or "desc", case-insensitively. An empty string is
// ascending.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	}
	return OrderAsc, mdwerrors.InvalidInput(mdwerrors.GroupCollections, opParseOrder, s,
		fmt.Sprintf(`Expected "asc" or "desc" as sort order, got %q`, s))
}

// Contains reports whether every one of values occurs in items. Without
// values it reports false. Maps and slices held in interface values are
// compared by deep equality.
func Contains[T comparable](items []T, values ...T) bool {
	if len(values) == 0 {
		return false
	}
	if hashable(items) && hashable(values) {
		return lo.Every(items, values)
	}
	return lo.EveryBy(values, func(v T) bool {
		return lo.ContainsBy(items, func(item T) bool { return deepEqual(item, v) })
	})
}

// Uniq removes duplicates, keeping the first occurrence of each value. Maps
// and slices held in interface values are compared by deep equality.
func Uniq[T comparable](items []T) []T {
	if hashable(items) {
		return lo.Uniq(items)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !lo.ContainsBy(out, func(seen T) bool { return deepEqual(seen, item) }) {
			out = append(out, item)
		}
	}
	return out
}

// hashable reports whether every dynamic type in items supports ==
func hashable[T any](items []T) bool {
	return lo.EveryBy(items, func(item T) bool {
		t := reflect.TypeOf(any(item))
		return t == nil || t.Comparable()
	})
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(any(a), any(b))
}

// Scalar is the element constraint of PickRandom
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string | ~bool
}

func emptyInput(operation string) error {
	return mdwerrors.InvalidInput(mdwerrors.GroupCollections, operation, nil, "Expected non-empty array as input")
}

// compare orders two values found at a sort path. Numbers of any kind compare
// numerically; strings, bools and times compare among themselves.
func compare(a, b any) (int, bool) {
	if ta, ok := asTime(a); ok {
		tb, ok := asTime(b)
		if !ok {
			return 0, false
		}
		return ta.Compare(tb), true
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return 0, false
	}

	if c, ok := compareIntegers(ra, rb); ok {
		return c, true
	}

	if fa, ok := asFloat(ra); ok {
		fb, ok := asFloat(rb)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}

	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return strings.Compare(ra.String(), rb.String()), true
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		x, y := ra.Bool(), rb.Bool()
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// compareIntegers compares two integer values exactly, without the rounding
// of a float conversion above 2^53
func compareIntegers(a, b reflect.Value) (int, bool) {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int()), true
	case isUnsigned(a) && isUnsigned(b):
		return cmp.Compare(a.Uint(), b.Uint()), true
	case isSigned(a) && isUnsigned(b):
		if a.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.Int()), b.Uint()), true
	case isUnsigned(a) && isSigned(b):
		if b.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(a.Uint(), uint64(b.Int())), true
	}
	return 0, false
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func asFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
