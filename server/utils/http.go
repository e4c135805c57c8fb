// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
)

// PeerIP parses the address of the directly connected peer.
//
// trusted reports whether the peer is loopback or on a private network,
// the only peers whose forwarding headers are honored.
func PeerIP(r *http.Request) (ip net.IP, trusted bool) {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	ip = net.ParseIP(host)
	if ip == nil {
		return nil, false
	}

	return ip, ip.IsPrivate() || ip.IsLoopback()
}

// IsConnectionSecure reports whether the client reached us over TLS,
// either directly or through a trusted reverse proxy that set
// X-Forwarded-Proto.
//
// A last proxy hop with a public address is not trusted, so such
// deployments are reported as insecure.
func IsConnectionSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	_, trusted := PeerIP(r)

	return trusted && r.Header.Get("X-Forwarded-Proto") == "https"
}
