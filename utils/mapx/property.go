// File: property.go
// Title: Property Inspection
// Description: Existence and strict value checks on object properties,
//              composed from HasProperty, and safe nested lookup.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.3.0: Initial implementation

package mapx

import (
	"reflect"
	"slices"

	"github.com/samber/lo"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/dotpath"
	"github.com/msto63/datakit/utils/typex"
)

const (
	opHasProperty            = "hasProperty"
	opHasProperties          = "hasProperties"
	opHasPropertyValue       = "hasPropertyValue"
	opHasPropertiesWithValue = "hasPropertiesWithValue"

	expectedObject = "object"
)

// IsObject reports whether v is a map with string keys or a struct
func IsObject(v any) bool {
	_, ok := dotpath.Keys(v)
	return ok
}

// HasProperty reports whether obj has the property key. It fails when obj is
// not an object.
func HasProperty(obj any, key string) result.Result[bool] {
	if !IsObject(obj) {
		return result.Err[bool](mdwerrors.InvalidType(mdwerrors.GroupObjects, opHasProperty, obj, expectedObject))
	}
	_, found := dotpath.Lookup(obj, key)
	return result.Ok(found)
}

// HasProperties reports whether obj has every one of keys
func HasProperties(obj any, keys ...string) result.Result[bool] {
	if len(keys) == 0 {
		return result.Err[bool](mdwerrors.InvalidInput(mdwerrors.GroupObjects, opHasProperties, nil,
			"Expected at least one property name"))
	}
	all := result.Ok(true)
	for _, key := range keys {
		all = result.AndThen(all, func(ok bool) result.Result[bool] {
			if !ok {
				return result.Ok(false)
			}
			return HasProperty(obj, key)
		})
	}
	return all
}

// HasPropertyValue reports whether obj has key and its value equals value.
// Equality is strict: the dynamic types must match and the values must be
// deeply equal, so 1 and 1.0 differ.
func HasPropertyValue(obj any, key string, value any) result.Result[bool] {
	return result.AndThen(HasProperty(obj, key), func(found bool) result.Result[bool] {
		if !found {
			return result.Ok(false)
		}
		actual, _ := dotpath.Lookup(obj, key)
		return result.Ok(strictEqual(actual, value))
	})
}

// HasPropertiesWithValue reports whether obj holds every key of expected with
// the expected value
func HasPropertiesWithValue(obj any, expected map[string]any) result.Result[bool] {
	if len(expected) == 0 {
		return result.Err[bool](mdwerrors.InvalidInput(mdwerrors.GroupObjects, opHasPropertiesWithValue, nil,
			"Expected at least one property value"))
	}
	keys := lo.Keys(expected)
	slices.Sort(keys)

	all := result.Ok(true)
	for _, key := range keys {
		all = result.AndThen(all, func(ok bool) result.Result[bool] {
			if !ok {
				return result.Ok(false)
			}
			return HasPropertyValue(obj, key, expected[key])
		})
	}
	return all
}

// GetPropertyValue returns the value at a dotted path, or nil as soon as a
// segment is missing or nullish
func GetPropertyValue(obj any, path string) any {
	value, ok := dotpath.Resolve(obj, path)
	if !ok || typex.IsNullish(value) {
		return nil
	}
	return value
}

func strictEqual(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
