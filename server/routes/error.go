// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/server/request_context"
	"github.com/pypeclub/openpype-website/views"
)

// ErrorPage writes the status code and error held by the request context as a themed page.
//
// Internal error details are only shown in development.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	rc := request_context.FromRequest(r)

	writeErrorPage(w, r, rc.RequestError, rc.StatusCode, config.Global.Development.InDevelopment)
}

// BlockPage writes a themed page explaining why the limiter refused a request.
func BlockPage(w http.ResponseWriter, r *http.Request, reason error, statusCode int) {
	rc := request_context.FromRequest(r)
	rc.RequestError = reason
	rc.StatusCode = statusCode

	writeErrorPage(w, r, reason, statusCode, true)
}

// NotFound is the handler for paths no other route matches.
//
// middleware.CatchError replaces the empty 404 with the themed error page.
func NotFound(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return nil
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, err error, statusCode int, showDetails bool) {
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	pageData := views.ErrorData{
		Title:       http.StatusText(statusCode),
		Site:        config.Global.SiteConfig(),
		Error:       err,
		StatusCode:  statusCode,
		ShowDetails: showDetails,
	}

	if renderErr := views.Error(pageData).Render(r.Context(), w); renderErr != nil {
		log.Err(renderErr).
			Int("status_code", statusCode).
			Msg("Failed to render the error page")
	}
}
