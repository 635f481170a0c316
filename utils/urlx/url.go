// File: url.go
// Title: URL Utilities
// Description: Validation, canonical URLs, parents and path segments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-20
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-20 v0.1.0: Initial implementation

package urlx

import (
	"net/url"
	"strings"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/stringx"
)

const (
	opCanonicalURL   = "canonicalUrl"
	opParentURL      = "parentUrl"
	opParentPathname = "parentPathname"
	opPathSegments   = "pathSegments"
)

// IsURL reports whether v is a string holding an absolute URL with scheme
// and host
func IsURL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, ok = parseAbsolute(s)
	return ok
}

// CanonicalURL joins base and pathname and parses the result. Trailing
// slashes of base are dropped and pathname gets a leading slash when it has
// none. It fails when base is not a string or the joined URL is not
// absolute.
func CanonicalURL(base any, pathname string) result.Result[*url.URL] {
	return result.AndThen(asString(opCanonicalURL, base), func(b string) result.Result[*url.URL] {
		b = strings.TrimRight(strings.TrimSpace(b), "/")
		if pathname != "" && !strings.HasPrefix(pathname, "/") {
			pathname = "/" + pathname
		}
		u, ok := parseAbsolute(b + pathname)
		if !ok {
			return result.Err[*url.URL](mdwerrors.InvalidFormat(mdwerrors.GroupURLs, opCanonicalURL, b+pathname, "Invalid URL"))
		}
		return result.Ok(u)
	})
}

// ParentURL strips the last path segment of an absolute URL. Query and
// fragment are dropped; the result always ends with a slash.
func ParentURL(v any) result.Result[string] {
	return result.AndThen(asString(opParentURL, v), func(s string) result.Result[string] {
		u, ok := parseAbsolute(s)
		if !ok {
			return result.Err[string](mdwerrors.InvalidFormat(mdwerrors.GroupURLs, opParentURL, s, "Invalid URL"))
		}
		parent := *u
		parent.Path = parentPath(u.Path)
		parent.RawPath = ""
		parent.RawQuery = ""
		parent.Fragment = ""
		return result.Ok(parent.String())
	})
}

// ParentPathname strips the last segment of a pathname, or of the path of a
// URL. The result always ends with a slash.
func ParentPathname(v any) result.Result[string] {
	return result.AndThen(pathOf(opParentPathname, v), func(p string) result.Result[string] {
		return result.Ok(parentPath(p))
	})
}

// PathSegments returns the non-empty segments of a pathname or of the path of
// a URL
func PathSegments(v any) result.Result[[]string] {
	return result.Map(pathOf(opPathSegments, v), splitPath)
}

func parseAbsolute(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func asString(operation string, v any) result.Result[string] {
	return result.MapErr(stringx.AsString(operation, v), func(error) error {
		return mdwerrors.InvalidType(mdwerrors.GroupURLs, operation, v, "string value")
	})
}

func pathOf(operation string, v any) result.Result[string] {
	return result.AndThen(asString(operation, v), func(s string) result.Result[string] {
		u, err := url.Parse(s)
		if err != nil {
			return result.Err[string](mdwerrors.InvalidFormat(mdwerrors.GroupURLs, operation, s, "Invalid URL or pathname"))
		}
		return result.Ok(u.Path)
	})
}

func splitPath(p string) []string {
	segments := make([]string, 0)
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func parentPath(p string) string {
	segments := splitPath(p)
	if len(segments) <= 1 {
		return "/"
	}
	return "/" + strings.Join(segments[:len(segments)-1], "/") + "/"
}
