// File: result_test.go
// Title: Result Type Tests
// Description: Tests for construction, inspection and composition of Results.
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
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestOk(t *testing.T) {
	r := Ok(42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, r.MustUnwrap())
	assert.Equal(t, 42, r.UnwrapOr(7))
	assert.NoError(t, r.Err())
	assert.Equal(t, "Ok(42)", r.String())
}

func TestErr(t *testing.T) {
	r := Err[int](errBoom)

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	v, err := r.Unwrap()
	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, v)
	assert.Equal(t, 7, r.UnwrapOr(7))
	assert.Panics(t, func() { r.MustUnwrap() })
	assert.Equal(t, "Err(boom)", r.String())

	_, ok := r.Value()
	assert.False(t, ok)
}

func TestErrNilStillFails(t *testing.T) {
	r := Err[string](nil)

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), ErrNilFailure)
}

func TestFrom(t *testing.T) {
	assert.True(t, From(strconv.Atoi("12")).IsOk())
	assert.True(t, From(strconv.Atoi("twelve")).IsErr())
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	assert.Equal(t, 8, Map(Ok(4), double).MustUnwrap())

	failed := Map(Err[int](errBoom), double)
	assert.ErrorIs(t, failed.Err(), errBoom)

	str := Map(Ok(5), strconv.Itoa)
	assert.Equal(t, "5", str.MustUnwrap())
}

func TestAndThen(t *testing.T) {
	parse := func(s string) Result[int] { return From(strconv.Atoi(s)) }

	assert.Equal(t, 12, AndThen(Ok("12"), parse).MustUnwrap())
	assert.True(t, AndThen(Ok("x"), parse).IsErr())

	called := false
	r := AndThen(Err[string](errBoom), func(s string) Result[int] {
		called = true
		return Ok(1)
	})
	assert.False(t, called)
	assert.Same(t, errBoom, r.Err())
}

func TestMapErr(t *testing.T) {
	wrapped := errors.New("wrapped")
	assert.Same(t, wrapped, MapErr(Err[int](errBoom), func(error) error { return wrapped }).Err())
	assert.Equal(t, 1, MapErr(Ok(1), func(error) error { return wrapped }).MustUnwrap())
}

func TestMatch(t *testing.T) {
	describe := func(r Result[int]) string {
		return Match(r,
			func(v int) string { return "value " + strconv.Itoa(v) },
			func(err error) string { return "failure " + err.Error() },
		)
	}

	assert.Equal(t, "value 3", describe(Ok(3)))
	assert.Equal(t, "failure boom", describe(Err[int](errBoom)))
}

func TestCollect(t *testing.T) {
	all := Collect([]Result[int]{Ok(1), Ok(2), Ok(3)})
	assert.Equal(t, []int{1, 2, 3}, all.MustUnwrap())

	some := Collect([]Result[int]{Ok(1), Err[int](errBoom), Ok(3)})
	assert.ErrorIs(t, some.Err(), errBoom)
}

func TestMapLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("map identity", prop.ForAll(
		func(v int) bool {
			return Map(Ok(v), func(x int) int { return x }).MustUnwrap() == v
		},
		gen.Int(),
	))

	properties.Property("map composition", prop.ForAll(
		func(v int) bool {
			f := func(x int) int { return x + 1 }
			g := func(x int) int { return x * 3 }
			left := Map(Map(Ok(v), f), g).MustUnwrap()
			right := Map(Ok(v), func(x int) int { return g(f(x)) }).MustUnwrap()
			return left == right
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
