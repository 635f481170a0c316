// Package error provides the structured error type used by every datakit package.
//
// Package: error
// Title: datakit Structured Errors
// Description: Implements an error type that carries a code, a severity, a set
//              of details and an optional cause. Utility functions never return
//              bare strings as failures; they return *Error values whose message
//              is namespaced with the originating group and function.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation derived from the platform error type
// - 2026-10-02 v0.2.0: Reduced code set to the data utility domain
//
// Usage:
//
//	import mdwerror "github.com/msto63/datakit/core/error"
//
//	err := mdwerror.New("[strings.toSlug] Expected string value as input").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithDetail("input", 42)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//		// handle wrong input type
//	}
package error
