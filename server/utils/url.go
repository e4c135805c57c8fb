// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var errIncompleteURL = errors.New("URL needs both a scheme and a host, e.g. https://example.com")

// ParseOrigin reduces an absolute URL to "scheme://host", dropping any path,
// query or fragment.
func ParseOrigin(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL %q: %w", raw, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q: %w", raw, errIncompleteURL)
	}

	return u.Scheme + "://" + u.Host, nil
}

// GetOriginFromRequest returns "scheme://host" as seen by the client.
func GetOriginFromRequest(r *http.Request) string {
	if IsConnectionSecure(r) {
		return "https://" + r.Host
	}

	return "http://" + r.Host
}

// SanitizeReturnPath returns s if it is an absolute path on this origin,
// or "" when it could redirect elsewhere.
func SanitizeReturnPath(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case !strings.HasPrefix(s, "/"), strings.HasPrefix(s, "//"), strings.Contains(s, "://"):
		return ""
	default:
		return s
	}
}
