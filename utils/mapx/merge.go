// File: merge.go
// Title: Deep Merge
// Description: Structural merge of decoded documents.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-24 v0.1.0: Shallow merge of generic maps
// - 2026-10-02 v0.3.0: Recursive merge with slice concatenation

package mapx

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/msto63/datakit/utils/typex"
)

// Merge returns a new map holding target merged with source. Nested maps
// merge recursively, slices concatenate target first, other source values
// replace target values and nil source values are ignored. Neither argument
// is modified.
func Merge(target, source map[string]any) map[string]any {
	merged := cloneMap(target)
	for key, value := range source {
		if typex.IsNullish(value) {
			continue
		}
		merged[key] = mergeValue(merged[key], value)
	}
	return merged
}

func mergeValue(current, incoming any) any {
	if cm, ok := current.(map[string]any); ok {
		if im, ok := incoming.(map[string]any); ok {
			return Merge(cm, im)
		}
	}
	if typex.IsArray(current) && typex.IsArray(incoming) {
		return concat(current, incoming)
	}
	return cloneValue(incoming)
}

// concat appends two slices or arrays. Slices of the same type keep it;
// anything else becomes []any.
func concat(a, b any) any {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Slice && ra.Type() == rb.Type() {
		out := reflect.MakeSlice(ra.Type(), 0, ra.Len()+rb.Len())
		return reflect.AppendSlice(reflect.AppendSlice(out, ra), rb).Interface()
	}
	out := make([]any, 0, ra.Len()+rb.Len())
	for _, rv := range []reflect.Value{ra, rb} {
		for i := 0; i < rv.Len(); i++ {
			out = append(out, rv.Index(i).Interface())
		}
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	return lo.MapValues(m, func(value any, _ string) any {
		return cloneValue(value)
	})
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		return lo.Map(t, func(item any, _ int) any {
			return cloneValue(item)
		})
	}
	return v
}
