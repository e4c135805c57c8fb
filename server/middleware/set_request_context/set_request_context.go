// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/pypeclub/openpype-website/server/middleware"
	"github.com/pypeclub/openpype-website/server/request_context"
)

// New returns a middleware that attaches a RequestContext to each HTTP request.
//
// locale is the tag the site is rendered in.
func New(locale language.Tag) middleware.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		next.ServeHTTP(w, r.WithContext(request_context.WithRequestContext(r.Context(), r, locale)))
	}
}
