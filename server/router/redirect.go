// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"

	"github.com/pypeclub/openpype-website/config"
)

// redirectToHome permanently redirects to the homepage under the base URL.
//
// Old links to /index.html keep working after the move away from static hosting.
func redirectToHome(w http.ResponseWriter, r *http.Request) {
	target := config.Global.SiteConfig().BaseURL
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusPermanentRedirect)
}
