// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/views"
)

// HomePage is the handler for the / page.
func HomePage(w http.ResponseWriter, r *http.Request) error {
	siteConfig := config.Global.SiteConfig()

	setPublicCacheControl(w)
	setContentLanguage(w, r)
	PreloadImages(w, baseurl.Resolve(siteConfig.BaseURL, views.LogoPath))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	return views.Home(views.HomeData{
		Site:    siteConfig,
		Content: config.Global.Site.Content,
	}).Render(r.Context(), w)
}
