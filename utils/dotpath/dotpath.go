// File: dotpath.go
// Title: Dotted Path Resolution
// Description: Resolve, Lookup, Keys and Set over maps, structs and slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package dotpath

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Separator splits path segments
const Separator = "."

// Split splits a dotted path into its non-empty segments
func Split(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, Separator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Join joins segments into a dotted path
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Resolve walks path through v. The boolean is false when any segment is
// missing or a nil value is reached before the last segment. An empty path
// resolves to v itself.
func Resolve(v any, path string) (any, bool) {
	current := v
	for _, segment := range Split(path) {
		next, ok := Lookup(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Has reports whether path resolves in v
func Has(v any, path string) bool {
	_, ok := Resolve(v, path)
	return ok
}

// Lookup resolves a single segment without splitting on dots
func Lookup(v any, key string) (any, bool) {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		item := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true

	case reflect.Struct:
		field, ok := fieldByKey(rv, key)
		if !ok {
			return nil, false
		}
		return field.Interface(), true

	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= rv.Len() {
			return nil, false
		}
		return rv.Index(index).Interface(), true
	}

	return nil, false
}

// Keys returns the property names of a map with string keys or of a struct
// (exported fields including promoted ones, by their tag name when present).
// The boolean is false when v is neither.
func Keys(v any) ([]string, bool) {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		return keys, true

	case reflect.Struct:
		var keys []string
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if !usableField(f) {
				continue
			}
			keys = append(keys, fieldName(f))
		}
		return keys, true
	}

	return nil, false
}

// Set stores value at path inside m, creating intermediate maps. An
// intermediate value that is not a map[string]any is replaced.
func Set(m map[string]any, path string, value any) {
	segments := Split(path)
	if m == nil || len(segments) == 0 {
		return
	}

	current := m
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// indirect follows pointers and interfaces. It returns false for nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

func fieldByKey(rv reflect.Value, key string) (reflect.Value, bool) {
	fields := reflect.VisibleFields(rv.Type())

	var fallback []int
	for _, f := range fields {
		if !usableField(f) {
			continue
		}
		if f.Name == key || tagName(f, "json") == key || tagName(f, "yaml") == key {
			return fieldByIndex(rv, f.Index)
		}
		if fallback == nil && strings.EqualFold(f.Name, key) {
			fallback = f.Index
		}
	}
	if fallback != nil {
		return fieldByIndex(rv, fallback)
	}
	return reflect.Value{}, false
}

// fieldByIndex is FieldByIndex without panicking on nil embedded pointers
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 {
			var ok bool
			if rv, ok = indirect(rv); !ok {
				return reflect.Value{}, false
			}
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func usableField(f reflect.StructField) bool {
	if !f.IsExported() || tagName(f, "json") == "-" || tagName(f, "yaml") == "-" {
		return false
	}
	// embedded structs contribute their promoted fields instead of themselves
	if f.Anonymous {
		t := f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		return t.Kind() != reflect.Struct
	}
	return true
}

func fieldName(f reflect.StructField) string {
	if name := tagName(f, "json"); name != "" {
		return name
	}
	if name := tagName(f, "yaml"); name != "" {
		return name
	}
	return f.Name
}

func tagName(f reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
	return name
}
