// File: doc.go
// Title: Package Documentation for typex
// Description: Package typex classifies untyped values: predicates for the
//              kinds found in decoded documents and Go values, the Symbol
//              type and KindOf.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

// Package typex provides type predicates over untyped values.
//
// Every predicate has the signature func(any) bool and never panics; nil and
// typed nil values simply classify as false (or as nullish).
//
// Emptiness follows one rule: nullish values, NaN, the empty string and
// zero-length slices, arrays and maps are empty. Booleans and numbers are
// never empty, zero included.
//
// Truthiness follows the usual scripting rules: false, numeric zero, NaN, the
// empty string and nullish values are falsy; everything else is truthy.
package typex
