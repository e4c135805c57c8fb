// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/views"
)

// ComponentsPage is the handler for the /dev/components page.
func ComponentsPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")

	return views.Components(views.HomeData{
		Site:    config.Global.SiteConfig(),
		Content: config.Global.Site.Content,
	}).Render(r.Context(), w)
}
