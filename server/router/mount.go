// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/server/middleware"
	"github.com/pypeclub/openpype-website/server/routes"
)

// MountAt serves h under the base URL path.
//
// Requests under base reach h with the prefix removed, so h always sees
// site-relative paths. A request for base without its trailing slash is
// redirected to base. Everything outside base is not found.
func MountAt(base string, h http.Handler) http.Handler {
	base = baseurl.Normalize(base)
	if base == "/" {
		return h
	}

	prefix := strings.TrimSuffix(base, "/")
	notFound := middleware.CatchError(routes.NotFound)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == prefix {
			target := base
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			http.Redirect(w, r, target, http.StatusPermanentRedirect)

			return
		}

		p := strings.TrimPrefix(r.URL.Path, prefix)
		rp := strings.TrimPrefix(r.URL.RawPath, prefix)

		if len(p) == len(r.URL.Path) || !strings.HasPrefix(p, "/") ||
			(r.URL.RawPath != "" && len(rp) == len(r.URL.RawPath)) {
			notFound(w, r)

			return
		}

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = p
		r2.URL.RawPath = rp

		h.ServeHTTP(w, r2)
	})
}
