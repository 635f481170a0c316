// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              datakit utilities and of the datakit command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Reduced to the data utility domain

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeNotComparable    Code = "NOT_COMPARABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeIOError       Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeNotComparable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeNotComparable:
		return "validation"
	case CodeNotFound:
		return "lookup"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "lookup":
		return 1
	case "configuration":
		return 2
	case "io":
		return 3
	default:
		return 1
	}
}
