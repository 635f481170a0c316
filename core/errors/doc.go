// Package errors provides the standard failure constructors for all datakit
// utility groups.
//
// Package: errors
// Title: Standard Failure API for datakit
// Description: Builds *mdwerror.Error values whose message is namespaced with
//              the originating group and function, e.g.
//              "[strings.toSlug] Expected string value as input". The message
//              text is part of the public contract; callers and tests may match
//              on it. Group and operation are also stored as details so that
//              errors can be classified without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation derived from the platform error standards
// - 2026-10-02 v0.2.0: Namespaced "[group.function]" messages
//
// Usage:
//
//	err := errors.InvalidType(errors.GroupStrings, "toSlug", 42, "string value")
//	fmt.Println(err) // [strings.toSlug] Expected string value as input
//
//	if errors.IsGroupOperation(err, errors.GroupStrings, "toSlug") {
//		// ...
//	}
package errors
