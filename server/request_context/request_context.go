// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context holds the state shared by the middleware chain and
the handlers of a single request.

It lives apart from middleware so that routes can read it without an import cycle.
*/
package request_context

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/pypeclub/openpype-website/core/idgen"
	"github.com/pypeclub/openpype-website/server/template/commondata"
)

// RequestContext carries request-scoped data through the middleware chain.
type RequestContext struct {
	RequestID string

	// RequestError is set by middleware.CatchError when a handler fails.
	// A non-nil value replaces the response with the error page.
	RequestError error

	// StatusCode is the status sent with the response, 200 unless changed.
	StatusCode int

	CommonData commondata.PageCommonData

	// Locale is the language the site is rendered in.
	Locale language.Tag
}

type ctxKey struct{}

// WithRequestContext attaches a fresh RequestContext for r to ctx.
func WithRequestContext(ctx context.Context, r *http.Request, locale language.Tag) context.Context {
	rc := &RequestContext{
		RequestID:  idgen.Make(),
		StatusCode: http.StatusOK,
		Locale:     locale,
	}
	commondata.PopulatePageCommonData(r, &rc.CommonData)

	return context.WithValue(ctx, ctxKey{}, rc)
}

// Lookup returns the RequestContext stored in ctx and whether there was one.
func Lookup(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(*RequestContext)

	return rc, ok
}

// FromContext returns the RequestContext stored in ctx. Contexts without
// one get a detached default so callers never deal with nil.
// Writes to a detached default are lost; use Lookup to tell them apart.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := Lookup(ctx); ok {
		return rc
	}

	return &RequestContext{StatusCode: http.StatusOK, Locale: language.Und}
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
