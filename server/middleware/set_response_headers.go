// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/pypeclub/openpype-website/config"
)

// shieldsOrigin serves the project badges rendered on the homepage.
const shieldsOrigin = "https://img.shields.io"

// contentSecurityPolicy allows same-origin styles and images plus the badge
// host. The pages ship no scripts.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"base-uri 'self'",
	"script-src 'none'",
	"style-src 'self'",
	"font-src 'self'",
	"connect-src 'self'",
	"img-src 'self' data: " + shieldsOrigin,
	"form-action 'none'",
	"frame-ancestors 'none'",
}, "; ") + ";"

// Browser features a static brochure never needs.
var permissionsPolicy = strings.Join([]string{
	"camera=()",
	"microphone=()",
	"geolocation=()",
	"payment=()",
	"usb=()",
	"display-capture=()",
	"publickey-credentials-get=()",
	"screen-wake-lock=()",
	"xr-spatial-tracking=()",
	"sync-xhr=()",
}, ", ")

// HSTS is left to the reverse proxy terminating TLS.
var securityHeaders = [][2]string{
	{"Content-Security-Policy", contentSecurityPolicy},
	{"Permissions-Policy", permissionsPolicy},
	{"Referrer-Policy", "no-referrer"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
}

// cacheRule maps a path to a Cache-Control value.
type cacheRule struct {
	match func(path string) bool
	value string
}

func hasPrefix(prefix string) func(string) bool {
	return func(path string) bool { return strings.HasPrefix(path, prefix) }
}

func hasSuffix(suffixes ...string) func(string) bool {
	return func(path string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(path, s) {
				return true
			}
		}

		return false
	}
}

// The first matching rule wins; pages fall through to revalidation.
var cacheRules = []cacheRule{
	{hasPrefix("/css/"), "max-age=604800"},       // 1 week
	{hasPrefix("/img/"), "max-age=1209600"},      // 2 weeks
	{hasSuffix(".txt", ".json"), "max-age=86400"}, // robots.txt, manifest.json
}

const defaultCacheControl = "private, no-cache"

// SetResponseHeaders adds the security, versioning and caching headers to
// every response. Handlers may override Cache-Control afterwards.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	h := w.Header()

	for _, kv := range securityHeaders {
		h.Set(kv[0], kv[1])
	}

	h.Set("Site-Version", config.BuildVersion)
	h.Set("Site-Revision", config.Global.Build.Revision())
	setCacheControl(h, r.URL.Path)

	if config.Global.Development.InDevelopment {
		clearCacheOnce.Do(func() { h.Set("Clear-Site-Data", `"cache"`) })
	}

	next.ServeHTTP(w, r)
}

// clearCacheOnce makes the first response of a development process wipe
// whatever the browser cached from a previous run.
var clearCacheOnce sync.Once

func setCacheControl(h http.Header, path string) {
	for _, rule := range cacheRules {
		if rule.match(path) {
			h.Set("Cache-Control", rule.value)

			return
		}
	}

	h.Set("Cache-Control", defaultCacheControl)
}
