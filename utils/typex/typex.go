// File: typex.go
// Title: Type Predicates
// Description: Reflection based classification of untyped values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package typex

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// IsBoolean reports whether v is a bool
func IsBoolean(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

// IsNumber reports whether v is an integer or floating point number
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsBigInt reports whether v is a big.Int or a non-nil *big.Int
func IsBigInt(v any) bool {
	switch b := v.(type) {
	case big.Int:
		return true
	case *big.Int:
		return b != nil
	}
	return false
}

// IsString reports whether v is a string
func IsString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

// IsArray reports whether v is a slice or an array. Nil slices count.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsPlainObject reports whether v is a non-nil map with string keys.
// Structs, slices and dates are not plain objects.
func IsPlainObject(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
}

// IsFunction reports whether v is a non-nil func
func IsFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsSymbol reports whether v is a Symbol
func IsSymbol(v any) bool {
	switch s := v.(type) {
	case Symbol:
		return !s.IsZero()
	case *Symbol:
		return s != nil && !s.IsZero()
	}
	return false
}

// IsDate reports whether v is a time.Time or a non-nil *time.Time
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsRegExp reports whether v is a compiled, non-nil regular expression
func IsRegExp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

// IsNullish reports whether v is nil or a typed nil pointer, interface, map,
// slice, func or channel.
func IsNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsNaN reports whether v is a floating point NaN
func IsNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// IsDefined reports whether v is neither nullish nor NaN
func IsDefined(v any) bool {
	return !IsNullish(v) && !IsNaN(v)
}

// IsTruthy reports whether v is truthy
func IsTruthy(v any) bool {
	if IsNullish(v) || IsNaN(v) {
		return false
	}
	switch b := v.(type) {
	case *big.Int:
		return b.Sign() != 0
	case big.Int:
		return b.Sign() != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// IsEmpty reports whether v is nullish, NaN, an empty string or a slice,
// array or map without elements. Booleans and numbers are never empty.
func IsEmpty(v any) bool {
	if IsNullish(v) || IsNaN(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
