// File: utils.go
// Title: Failure Builder and Constructors
// Description: Fluent builder and the constructors used by the utility groups
//              to report rejected input, malformed values, missing properties
//              and out-of-range quantities.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation derived from the platform error builder
// - 2026-10-02 v0.2.0: Namespaced messages, group/operation details

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/datakit/core/error"
)

// ErrorBuilder provides a fluent interface for building namespaced errors
type ErrorBuilder struct {
	group       string
	operation   string
	reason      string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified group
func NewErrorBuilder(group string) *ErrorBuilder {
	return &ErrorBuilder{
		group:   group,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the function name used in the namespace
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Reason sets the human readable reason that follows the namespace
func (eb *ErrorBuilder) Reason(reason string) *ErrorBuilder {
	eb.reason = reason
	return eb
}

// Reasonf sets the reason with formatting
func (eb *ErrorBuilder) Reasonf(format string, args ...interface{}) *ErrorBuilder {
	eb.reason = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Input records the rejected input as a detail
func (eb *ErrorBuilder) Input(input interface{}) *ErrorBuilder {
	eb.details[DetailInput] = describe(input)
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Message returns the namespaced message the built error will carry
func (eb *ErrorBuilder) Message() string {
	reason := eb.reason
	if reason == "" {
		reason = "operation failed"
	}
	return Namespace(eb.group, eb.operation) + " " + reason
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.Message())
	} else {
		err = mdwerror.New(eb.Message())
	}

	err = err.WithCode(eb.code).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithDetail(DetailGroup, eb.group)
	if eb.operation != "" {
		err = err.WithDetail(DetailOperation, eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// =============================================================================
// STANDARD FAILURE CONSTRUCTORS
// =============================================================================

// InvalidType reports input of the wrong type. expected names the accepted
// shape, e.g. "string value", producing "Expected string value as input".
func InvalidType(group, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reasonf("Expected %s as input", expected).
		Code(mdwerror.CodeInvalidInput).
		Input(input).
		Detail("expected", expected).
		Build()
}

// InvalidInput reports input that has the right type but cannot be used
func InvalidInput(group, operation string, input interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reason(reason).
		Code(mdwerror.CodeInvalidInput).
		Input(input).
		Build()
}

// InvalidFormat reports a malformed value, e.g. an unparsable URL or date
func InvalidFormat(group, operation string, input interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reason(reason).
		Code(mdwerror.CodeInvalidFormat).
		Input(input).
		Build()
}

// NotFound reports a missing property or key
func NotFound(group, operation string, identifier interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reason(reason).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", describe(identifier)).
		Build()
}

// OutOfRange reports a numeric argument outside the accepted bounds
func OutOfRange(group, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reasonf("Expected value between %v and %v, got %v", min, max, value).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotComparable reports two values that have no common ordering
func NotComparable(group, operation string, a, b interface{}) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Reasonf("Cannot compare values of type %T and %T", a, b).
		Code(mdwerror.CodeNotComparable).
		Build()
}

// OperationFailed wraps an unexpected lower-level failure
func OperationFailed(group, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(group).
		Operation(operation).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from a datakit error
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractGroup extracts the group name from an error
func ExtractGroup(err error) string {
	if group, ok := ExtractDetails(err)[DetailGroup].(string); ok {
		return group
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)[DetailOperation].(string); ok {
		return operation
	}
	return ""
}

// IsGroupOperation checks if error is from a specific group and operation
func IsGroupOperation(err error, group, operation string) bool {
	return ExtractGroup(err) == group && ExtractOperation(err) == operation
}
