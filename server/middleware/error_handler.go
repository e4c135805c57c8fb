// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/core/audit"
	"github.com/pypeclub/openpype-website/server/metrics"
	"github.com/pypeclub/openpype-website/server/request_context"
	"github.com/pypeclub/openpype-website/server/routes"
)

// FallibleHandler is an HTTP handler that reports failure by returning an error.
type FallibleHandler = func(w http.ResponseWriter, r *http.Request) error

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered using an httptest.ResponseRecorder and any returned
// error is stored in the request context. Then:
//   - If the handler returned an error without writing an HTTP error status
//     (i.e., status < 400), the buffered response is discarded and a
//     500 Internal Server Error page is rendered.
//   - If the handler wrote a 404 Not Found status, the buffered response is
//     also discarded and replaced with the themed error page.
//   - In all other cases the buffered response is written to the client.
//
// Finally, it records the completed request in metrics.Global and logs it via
// the audit package.
func CatchError(handler FallibleHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Handlers mounted outside the chain still need one shared context,
		// or ErrorPage would read a different status than the one set here.
		if _, ok := request_context.Lookup(r.Context()); !ok {
			locale := language.Make(config.Global.Site.Locale)
			r = r.WithContext(request_context.WithRequestContext(r.Context(), r, locale))
		}

		ctx := request_context.FromRequest(r)

		span := audit.Span{
			Destination: audit.ToUser,
			RequestID:   ctx.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
		}

		r = r.WithContext(span.Begin(r.Context()))
		defer span.End()

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case (ctx.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			sized := &countingWriter{ResponseWriter: w}
			routes.ErrorPage(sized, r) // ErrorPage uses ctx.RequestError and ctx.StatusCode
			span.Size = sized.n

		default:
			// A successful response or a handled error. We trust the recorder's output.
			ctx.StatusCode = recorder.Code
			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			span.Size = recorder.Body.Len()

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.End()
		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError

		metrics.Global.ObserveSpan(r.Pattern, span)

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// countingWriter counts the body bytes written through it.
type countingWriter struct {
	http.ResponseWriter

	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.ResponseWriter.Write(p)
	c.n += n

	return n, err
}
