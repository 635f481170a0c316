// Package result provides the two-variant outcome type returned by every
// fallible datakit function.
//
// Package: result
// Title: Outcome Type for datakit
// Description: A Result[T] holds either a success value of type T or a failure
//              error. Functions that can reject their input return a Result
//              instead of panicking; callers compose them with Map, AndThen,
//              Match and UnwrapOr. Predicates that cannot fail return bool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-15
// Modified: 2026-09-15
//
// Change History:
// - 2026-09-15 v0.1.0: Initial implementation on top of samber/mo
//
// Usage:
//
//	slug := stringx.ToSlug(input)
//	if slug.IsErr() {
//		return slug.Err()
//	}
//
//	title := result.AndThen(stringx.Normalize(input), func(s string) result.Result[string] {
//		return stringx.ToTitle(s)
//	})
//	fmt.Println(title.UnwrapOr("untitled"))
package result
