// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata of the structured error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	require.NotNil(t, err)
	assert.Equal(t, "test error message", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, SeverityMedium, err.Severity())
	assert.False(t, err.Timestamp().IsZero())
	assert.NotEmpty(t, err.StackTrace())
}

func TestNewf(t *testing.T) {
	err := Newf("[%s.%s] %s", "strings", "toSlug", "Expected string value as input")
	assert.Equal(t, "[strings.toSlug] Expected string value as input", err.Error())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "wrapper", wantNil: true},
		{name: "wrap standard error", err: errors.New("original"), message: "wrapper", wantMsg: "wrapper: original"},
		{name: "wrap datakit error", err: New("inner").WithCode(CodeNotFound), message: "wrapper", wantMsg: "wrapper: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMsg, got.Error())
			assert.Equal(t, tt.err, got.Unwrap())
		})
	}
}

func TestWrapInheritsMetadata(t *testing.T) {
	inner := New("inner").
		WithCode(CodeInvalidFormat).
		WithOperation("formatDate").
		WithDetail("group", "dates")

	wrapped := Wrap(inner, "outer")

	assert.Equal(t, CodeInvalidFormat, wrapped.Code())
	assert.Equal(t, "formatDate", wrapped.Operation())
	v, ok := wrapped.Detail("group")
	assert.True(t, ok)
	assert.Equal(t, "dates", v)
	assert.Equal(t, inner, wrapped.RootCause())
}

func TestWithCodeAdjustsSeverity(t *testing.T) {
	assert.Equal(t, SeverityLow, New("x").WithCode(CodeInvalidInput).Severity())
	assert.Equal(t, SeverityHigh, New("x").WithCode(CodeConfigError).Severity())

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	assert.Equal(t, SeverityCritical, explicit.Severity())
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": "two"})

	details := err.Details()
	details["a"] = 99

	v, _ := err.Detail("a")
	assert.Equal(t, 1, v)
}

func TestHasCodeThroughChain(t *testing.T) {
	inner := New("inner").WithCode(CodeNotFound)
	outer := fmt.Errorf("context: %w", inner)

	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeInvalidInput))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
	assert.Equal(t, CodeNotFound, GetCode(outer))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, SeverityLow, GetSeverity(outer))
	assert.Equal(t, SeverityMedium, GetSeverity(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := New("[urls.canonicalUrl] Expected a valid base URL").
		WithCode(CodeInvalidFormat).
		WithOperation("canonicalUrl").
		WithDetail("input", "nope")

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "[urls.canonicalUrl] Expected a valid base URL", decoded["message"])
	assert.Equal(t, "INVALID_FORMAT", decoded["code"])
	assert.Equal(t, "low", decoded["severity"])
	assert.Equal(t, "canonicalUrl", decoded["operation"])
}

func TestStringContainsSortedDetails(t *testing.T) {
	err := New("boom").WithDetail("b", 2).WithDetail("a", 1)
	assert.Contains(t, err.String(), "Details: {a=1, b=2}")
}
