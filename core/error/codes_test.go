// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests for code categories, exit codes and severity mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-14
// Modified: 2026-09-14
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation

package error

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidInput, "validation", 1},
		{CodeNotComparable, "validation", 1},
		{CodeNotFound, "lookup", 1},
		{CodeInvalidConfig, "configuration", 2},
		{CodeIOError, "io", 3},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.True(t, tt.code.IsValid())
			assert.Equal(t, tt.category, tt.code.Category())
			assert.Equal(t, tt.exit, tt.code.ExitCode())
		})
	}

	assert.False(t, Code("SOMETHING_ELSE").IsValid())
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "low", SeverityLow.String())
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "unknown", Severity(42).String())
	assert.Equal(t, 2, SeverityHigh.Level())
	assert.True(t, SeverityHigh.ShouldAlert())
	assert.False(t, SeverityMedium.ShouldAlert())
	assert.Equal(t, SeverityCritical, GetSeverityFromCode(CodeInternal))
	assert.Equal(t, SeverityMedium, GetSeverityFromCode(CodeUnknown))
}
