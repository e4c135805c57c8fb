// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/server/routes"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit" // This is intended.
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitReset     string = "RateLimit-Reset"
)

// excludedPaths won't have traffic filtered by the limiter middleware.
var excludedPaths = []string{
	"/css/",
	"/img/",
	"/manifest.json",
	"/robots.txt",
	"/healthz",
	"/metrics",
}

var errBlockListed = errors.New("IP in block-list")

// Evaluate is the entrypoint to the limiter middleware.
func (l *Limiter) Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	defer l.maybeCleanup()

	// 1: Fast-path exclusions.
	if isExcludedPath(r.URL.Path) {
		next.ServeHTTP(w, r)

		return
	}

	client, err := l.newClientInfo(r)
	if err != nil {
		log.Warn().Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("Could not identify client, skipping limiter")
		next.ServeHTTP(w, r)

		return
	}

	// 2: IP-based filtering - explicit allow/deny lists take precedence.
	if allowed, blocked := client.checkIPLists(l.settings); allowed {
		next.ServeHTTP(w, r)

		return
	} else if blocked {
		log.Warn().
			Str("ip", client.ip.String()).
			Str("network", client.network.String()).
			Msg("Request blocked, IP in block-list")

		routes.BlockPage(w, r, errBlockListed, http.StatusForbidden)

		return
	}

	// 3: Rate limiting.
	client.limiter = l.getOrCreateLimiter(client.network.String())

	if blockReason := checkRateLimit(client.limiter, l.now()); blockReason != "" {
		addRateLimitHeaders(w, client, l.now())

		routes.BlockPage(w, r, errors.New(blockReason), http.StatusTooManyRequests)

		return
	}

	addRateLimitHeaders(w, client, l.now())
	next.ServeHTTP(w, r)
}

func isExcludedPath(path string) bool {
	for _, p := range excludedPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}

// addRateLimitHeaders adds rate limiting information to the response headers.
func addRateLimitHeaders(w http.ResponseWriter, client *ClientInfo, now time.Time) {
	if client == nil || client.limiter == nil {
		return
	}

	client.limiter.mu.Lock()
	defer client.limiter.mu.Unlock()

	limiter := client.limiter.limiter

	currentTokens := limiter.TokensAt(now)
	burst := limiter.Burst()
	limit := limiter.Limit()

	// Tokens remaining can't exceed burst or go below zero.
	remaining := int(math.Max(0, math.Min(float64(burst), currentTokens)))

	// Seconds until full bucket replenishment.
	var resetTime int64

	if currentTokens < float64(burst) && limit > 0 {
		resetTime = int64(math.Ceil((float64(burst) - currentTokens) / float64(limit)))
	}

	resetStr := strconv.FormatInt(resetTime, 10)

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(burst))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(HeaderRateLimitReset, resetStr)

	if remaining <= 0 {
		w.Header().Set("Retry-After", resetStr)
	}
}
