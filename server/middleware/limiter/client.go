// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"errors"
	"net"
	"net/http"
)

var (
	errMissingClientIP = errors.New("missing client IP")
	errInvalidIPFormat = errors.New("invalid IP format")
)

// ClientInfo is the resolved identity of a request for rate limiting.
//
// Instances are ephemeral and exist only for the duration of a single HTTP request lifecycle.
type ClientInfo struct {
	ip      net.IP
	network net.IPNet
	limiter *limiterWrapper
}

// newClientInfo resolves the client IP and network of a request without running any checks.
func (l *Limiter) newClientInfo(r *http.Request) (*ClientInfo, error) {
	realIP := getClientIP(r)
	if realIP == "" {
		return nil, errMissingClientIP
	}

	parsedIP := net.ParseIP(realIP)
	if parsedIP == nil {
		return nil, errInvalidIPFormat
	}

	return &ClientInfo{
		ip:      parsedIP,
		network: *getNetwork(parsedIP, l.settings.IPv4Prefix, l.settings.IPv6Prefix),
	}, nil
}

// checkIPLists checks if the client's IP is on the pass or block list.
//
// Returns (allowed, blocked) as a tuple - at most one can be true.
func (c *ClientInfo) checkIPLists(settings Settings) (bool, bool) {
	if ipMatchesList(c.ip, settings.PassIPs) {
		return true, false
	}

	if ipMatchesList(c.ip, settings.BlockIPs) {
		return false, true
	}

	return false, false
}
