// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		requestURL       string
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "Root path should not redirect",
			requestURL:     "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Path without trailing slash should not redirect",
			requestURL:     "/features",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "Path with trailing slash should redirect",
			requestURL:       "/features/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/features",
		},
		{
			name:             "Repeated trailing slashes collapse",
			requestURL:       "/features///",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/features",
		},
		{
			name:             "Query parameters should be preserved",
			requestURL:       "/features/?page=2&sort=desc",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/features?page=2&sort=desc",
		},
		{
			name:           "Protocol-relative target is not redirected",
			requestURL:     "//evil.example/",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "http://openpype.test", nil)
			req.URL.Path, req.URL.RawQuery, _ = splitRequestURL(tt.requestURL)

			rr := httptest.NewRecorder()

			Wrap(NormalizeURL, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}

func TestTrailingSlashTargetWithBase(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/features/?tab=maya", nil)

	assert.Equal(t, "/openpype/features?tab=maya", trailingSlashTarget("/openpype/", req))
	assert.Equal(t, "/features?tab=maya", trailingSlashTarget("/", req))
}

func TestHasTrailingSlash(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"/":          false,
		"/features":  false,
		"/features/": true,
		"/a/b/":      true,
	} {
		req := httptest.NewRequest(http.MethodGet, "http://openpype.test", nil)
		req.URL.Path = path

		assert.Equal(t, want, hasTrailingSlash(req), path)
	}
}

// splitRequestURL separates a path and raw query without the URL parser
// reinterpreting a leading "//" as an authority.
func splitRequestURL(s string) (string, string, bool) {
	for i := range len(s) {
		if s[i] == '?' {
			return s[:i], s[i+1:], true
		}
	}

	return s, "", false
}
