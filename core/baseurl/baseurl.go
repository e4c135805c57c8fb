// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package baseurl maps site-relative asset and page paths to deployable ones.

A site may be served from a path prefix (its base URL, e.g. "/openpype/").
Links authored as "/img/logo.svg" or "features#maya" are resolved against
that prefix, while external URLs, mail links and in-page fragments are left
alone.
*/
package baseurl

import (
	"regexp"
	"strings"
)

// protocolRegexp matches URLs that carry a scheme ("https:", "mailto:") or
// are protocol-relative ("//cdn.example.com").
var protocolRegexp = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9+.-]*:|//)`)

// Normalize returns base with exactly one leading and one trailing slash.
//
// An empty base normalizes to "/".
func Normalize(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}

	return "/" + base + "/"
}

// HasProtocol reports whether path is an absolute or protocol-relative URL.
func HasProtocol(path string) bool {
	return protocolRegexp.MatchString(path)
}

// Resolve maps path to its deployed location under base.
//
// base must already be normalized. Resolve never fails; malformed input
// comes back in a form a browser will treat as a broken link.
func Resolve(base, path string) string {
	if path == "" || strings.HasPrefix(path, "#") || HasProtocol(path) {
		return path
	}

	if path == strings.TrimSuffix(base, "/") {
		return base
	}

	if strings.HasPrefix(path, base) {
		return path
	}

	return base + strings.TrimPrefix(path, "/")
}

// Absolute is Resolve with the site origin prefixed.
//
// siteURL is the public origin, e.g. "https://openpype.io". If it is empty
// or path already has a protocol, Absolute behaves like Resolve.
func Absolute(siteURL, base, path string) string {
	resolved := Resolve(base, path)

	if siteURL == "" || HasProtocol(resolved) || strings.HasPrefix(resolved, "#") || resolved == "" {
		return resolved
	}

	return strings.TrimSuffix(siteURL, "/") + resolved
}
