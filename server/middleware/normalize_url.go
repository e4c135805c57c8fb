// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/server/utils"
)

// NormalizeURL is a middleware that permanently redirects paths with a trailing
// slash (except root) to the same path without it.
//
// Paths are site-relative here; the redirect target is re-anchored at the base URL.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if !hasTrailingSlash(r) {
		next.ServeHTTP(w, r)

		return
	}

	target := trailingSlashTarget(config.Global.SiteConfig().BaseURL, r)
	if target == "" {
		// Would redirect off-site; let routing reject it instead.
		next.ServeHTTP(w, r)

		return
	}

	http.Redirect(w, r, target, http.StatusPermanentRedirect)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

// trailingSlashTarget returns the redirect location for r without its
// trailing slash, or "" if the result would not be a same-origin path.
func trailingSlashTarget(base string, r *http.Request) string {
	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	target := utils.SanitizeReturnPath(strings.TrimSuffix(base, "/") + path)
	if target == "" || strings.HasPrefix(target, "//") {
		return ""
	}

	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	return target
}
