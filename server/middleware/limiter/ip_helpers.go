// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/server/utils"
)

// getClientIP returns the address the request originated from.
//
// Behind a trusted proxy, X-Real-IP is preferred, then the last hop of
// X-Forwarded-For. Otherwise the peer address is used as is.
func getClientIP(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}

	realIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))

	if _, trusted := utils.PeerIP(r); !trusted {
		if realIP != "" || forwarded != "" {
			log.Debug().Str("remote_ip", peer).Msg("Ignoring proxy headers from untrusted peer")
		}

		return peer
	}

	if realIP != "" {
		return realIP
	}

	if forwarded != "" {
		hops := strings.Split(forwarded, ",")

		return strings.TrimSpace(hops[len(hops)-1])
	}

	return peer
}

// ipMatchesList reports whether ip equals an entry or falls inside an
// entry written in CIDR notation. Unparseable entries never match.
func ipMatchesList(ip net.IP, entries []string) bool {
	for _, entry := range entries {
		if _, subnet, err := net.ParseCIDR(entry); err == nil {
			if subnet.Contains(ip) {
				return true
			}

			continue
		}

		if other := net.ParseIP(entry); other != nil && other.Equal(ip) {
			return true
		}
	}

	return false
}

// getNetwork masks ip to the prefix length configured for its family.
func getNetwork(ip net.IP, ipv4Prefix, ipv6Prefix int) *net.IPNet {
	mask := net.CIDRMask(ipv6Prefix, 8*net.IPv6len)
	if ip.To4() != nil {
		mask = net.CIDRMask(ipv4Prefix, 8*net.IPv4len)
	}

	return &net.IPNet{IP: ip.Mask(mask), Mask: mask}
}
