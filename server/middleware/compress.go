// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// minCompressSize skips compressing responses too small to benefit.
const minCompressSize = 512

// NewCompress returns a middleware that gzip-compresses responses for clients that accept it.
func NewCompress() (Middleware, error) {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minCompressSize),
		gzhttp.ContentTypes([]string{
			"text/html",
			"text/css",
			"text/plain",
			"image/svg+xml",
			"application/json",
			"application/manifest+json",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %w", err)
	}

	return FromHandlerWrapper(func(next http.Handler) http.Handler {
		return wrapper(next)
	}), nil
}
