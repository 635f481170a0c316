// File: symbol.go
// Title: Symbols and Kinds
// Description: Unique opaque identifiers with a description, and the named
//              kind classification used by the command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package typex

import (
	"reflect"

	"github.com/google/uuid"
)

// Symbol is a unique identifier. Two symbols with the same description are
// still different.
type Symbol struct {
	id          uuid.UUID
	description string
}

// NewSymbol creates a fresh symbol
func NewSymbol(description string) Symbol {
	return Symbol{id: uuid.New(), description: description}
}

// Description returns the description given to NewSymbol
func (s Symbol) Description() string {
	return s.description
}

// ID returns the identity of the symbol
func (s Symbol) ID() uuid.UUID {
	return s.id
}

// IsZero reports whether s was not created by NewSymbol
func (s Symbol) IsZero() bool {
	return s.id == uuid.Nil
}

// String returns "Symbol(description)"
func (s Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// Kind names the classification of a value
type Kind string

const (
	KindNull     Kind = "null"
	KindNaN      Kind = "nan"
	KindBoolean  Kind = "boolean"
	KindNumber   Kind = "number"
	KindBigInt   Kind = "bigint"
	KindString   Kind = "string"
	KindSymbol   Kind = "symbol"
	KindDate     Kind = "date"
	KindRegExp   Kind = "regexp"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
	KindFunction Kind = "function"
	KindOther    Kind = "other"
)

// KindOf classifies v. Structs and maps without string keys are KindOther.
func KindOf(v any) Kind {
	switch {
	case IsNullish(v):
		return KindNull
	case IsNaN(v):
		return KindNaN
	case IsBoolean(v):
		return KindBoolean
	case IsNumber(v):
		return KindNumber
	case IsBigInt(v):
		return KindBigInt
	case IsString(v):
		return KindString
	case IsSymbol(v):
		return KindSymbol
	case IsDate(v):
		return KindDate
	case IsRegExp(v):
		return KindRegExp
	case IsArray(v):
		return KindArray
	case IsPlainObject(v):
		return KindObject
	case IsFunction(v):
		return KindFunction
	}
	if reflect.TypeOf(v).Kind() == reflect.Pointer {
		return KindOf(reflect.ValueOf(v).Elem().Interface())
	}
	return KindOther
}

// Predicate is a named classification used for reports
type Predicate struct {
	Name string
	Test func(any) bool
}

// Predicates returns every predicate in a stable order
func Predicates() []Predicate {
	return []Predicate{
		{"isBoolean", IsBoolean},
		{"isNumber", IsNumber},
		{"isBigInt", IsBigInt},
		{"isString", IsString},
		{"isArray", IsArray},
		{"isPlainObject", IsPlainObject},
		{"isFunction", IsFunction},
		{"isSymbol", IsSymbol},
		{"isDate", IsDate},
		{"isRegExp", IsRegExp},
		{"isDefined", IsDefined},
		{"isTruthy", IsTruthy},
		{"isNullish", IsNullish},
		{"isEmpty", IsEmpty},
	}
}
