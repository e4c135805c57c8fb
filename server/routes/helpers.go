// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/server/request_context"
)

// PreloadImages writes a single Link header preloading urls with high priority.
func PreloadImages(w http.ResponseWriter, urls ...string) {
	if len(urls) == 0 {
		return
	}

	links := make([]string, 0, len(urls))
	for _, url := range urls {
		links = append(links, makePreloadImageLink(url))
	}

	// We use Add to not interfere with any prior Link header writes.
	w.Header().Add("Link", strings.Join(links, ", "))
}

// makePreloadImageLink returns a Link header fragment to preload an image with high priority.
func makePreloadImageLink(url string) string {
	return fmt.Sprintf("<%s>; rel=\"preload\"; as=\"image\"; fetchpriority=\"high\"", url)
}

// setPublicCacheControl marks a response as cacheable by shared caches for the configured durations.
func setPublicCacheControl(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
}

// setContentLanguage advertises the site locale, if one is set.
func setContentLanguage(w http.ResponseWriter, r *http.Request) {
	locale := request_context.FromRequest(r).Locale
	if locale.IsRoot() {
		return
	}

	w.Header().Set("Content-Language", locale.String())
}
