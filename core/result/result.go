// File: result.go
// Title: Result Type and Combinators
// Description: Implements Result[T] as a thin wrapper around mo.Result with
//              the composition primitives used across datakit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-15
// Modified: 2026-09-15
//
// Change History:
// - 2026-09-15 v0.1.0: Initial implementation

package result

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrNilFailure replaces a nil error passed to Err so that a failure always
// carries an error.
var ErrNilFailure = errors.New("result: failure without error")

// Result holds either a success value or a failure error, never both.
type Result[T any] struct {
	inner mo.Result[T]
}

// Ok creates a successful Result
func Ok[T any](value T) Result[T] {
	return Result[T]{inner: mo.Ok(value)}
}

// Err creates a failed Result
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{inner: mo.Err[T](err)}
}

// From converts a Go (value, error) pair into a Result
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a value
func (r Result[T]) IsOk() bool {
	return r.inner.IsOk()
}

// IsErr reports whether the Result holds a failure
func (r Result[T]) IsErr() bool {
	return r.inner.IsError()
}

// Unwrap returns the value and error in Go's conventional form
func (r Result[T]) Unwrap() (T, error) {
	return r.inner.Get()
}

// MustUnwrap returns the value and panics on failure
func (r Result[T]) MustUnwrap() T {
	return r.inner.MustGet()
}

// UnwrapOr returns the value, or fallback on failure
func (r Result[T]) UnwrapOr(fallback T) T {
	return r.inner.OrElse(fallback)
}

// Value returns the value and whether the Result is a success
func (r Result[T]) Value() (T, bool) {
	v, err := r.inner.Get()
	return v, err == nil
}

// Err returns the failure error, or nil on success
func (r Result[T]) Err() error {
	return r.inner.Error()
}

// String implements fmt.Stringer
func (r Result[T]) String() string {
	if v, err := r.inner.Get(); err == nil {
		return fmt.Sprintf("Ok(%v)", v)
	}
	return fmt.Sprintf("Err(%v)", r.inner.Error())
}

// Map transforms the success value; failures pass through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	v, err := r.inner.Get()
	if err != nil {
		return Err[U](err)
	}
	return Ok(fn(v))
}

// AndThen sequences a dependent fallible operation. The failure of r, or of
// fn, is propagated unchanged.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	v, err := r.inner.Get()
	if err != nil {
		return Err[U](err)
	}
	return fn(v)
}

// MapErr transforms the failure error; successes pass through unchanged.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.IsOk() {
		return r
	}
	return Err[T](fn(r.inner.Error()))
}

// Match branches into one of two callables depending on the variant.
func Match[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	v, err := r.inner.Get()
	if err != nil {
		return onErr(err)
	}
	return onOk(v)
}

// Collect turns a slice of Results into a Result of a slice, stopping at the
// first failure.
func Collect[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		v, err := r.inner.Get()
		if err != nil {
			return Err[[]T](err)
		}
		values = append(values, v)
	}
	return Ok(values)
}
