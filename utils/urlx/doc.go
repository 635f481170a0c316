// File: doc.go
// Title: Package Documentation for urlx
// Description: Package urlx provides URL validation and canonicalisation,
//              parent and segment derivation, default image paths and lexical
//              analysis of path shaped strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-20
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-20 v0.1.0: Initial implementation

// Package urlx provides URL and path utilities for datakit.
//
// URL functions accept untyped input and fail under the "urls" group:
//
//	u := urlx.CanonicalURL("https://example.com/", "/welcome")
//	u.MustUnwrap().String() // https://example.com/welcome
//	urlx.CanonicalURL(10, "").Err() // [urls.canonicalUrl] Expected string value as input
//
// The path helpers never touch the file system. Both "/" and "\" separate
// segments, so Windows paths are handled the same way as Unix paths:
//
//	urlx.Dirname(`C:\photos\cat.png`)  // C:\photos
//	urlx.Filename("/photos/cat.png")   // cat.png
//	urlx.IsImage("/photos/CAT.PNG")    // true
package urlx
