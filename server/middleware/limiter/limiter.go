// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This file provides network-based rate limiting for HTTP requests.

Clients are grouped by their IP network, and every network shares a
single token bucket.
*/
package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/pypeclub/openpype-website/config"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep limiters in memory before cleanup.
	CleanupInterval       = 5 * time.Minute // Interval between limiter cleanup runs.
)

// Settings controls how requests are limited.
type Settings struct {
	RequestsPerSecond float64
	Burst             int
	IPv4Prefix        int
	IPv6Prefix        int
	PassIPs           []string
	BlockIPs          []string
}

// SettingsFromConfig reads the Limiter section of cfg.
func SettingsFromConfig(cfg *config.ServerConfig) Settings {
	return Settings{
		RequestsPerSecond: cfg.Limiter.RequestsPerSecond,
		Burst:             cfg.Limiter.Burst,
		IPv4Prefix:        cfg.Limiter.IPv4Prefix,
		IPv6Prefix:        cfg.Limiter.IPv6Prefix,
		PassIPs:           cfg.Limiter.PassIPs,
		BlockIPs:          cfg.Limiter.BlockIPs,
	}
}

// Limiter holds the per-network token buckets.
type Limiter struct {
	settings Settings
	now      func() time.Time // time.Now, replaced in tests

	limiters sync.Map // network string -> *limiterWrapper

	cleanupMu     sync.Mutex
	lastCleanupAt time.Time
}

// New creates a Limiter with no tracked networks.
func New(settings Settings) *Limiter {
	return &Limiter{settings: settings, now: time.Now}
}

// limiterWrapper holds a rate limiter and additional metadata.
//
// Limiters are associated with an IP network and persist in Limiter.limiters.
type limiterWrapper struct {
	limiter    *rate.Limiter
	network    string     // Associated network identifier
	lastAccess time.Time  // Last time limiter was accessed
	mu         sync.Mutex // mutex for operations on this limiter
}

// checkRateLimit attempts to consume 1 token from the limiterWrapper.
//
// Returns an empty string if the request is allowed, or a non-empty string with
// the reason if the request is blocked due to rate limiting.
func checkRateLimit(limiter *limiterWrapper, now time.Time) string {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.lastAccess = now

	if !limiter.limiter.AllowN(now, 1) {
		log.Warn().
			Str("network", limiter.network).
			Msg("Rate limit exceeded")

		return "Rate limit exceeded"
	}

	return ""
}

// getOrCreateLimiter returns the limiterWrapper for the given network,
// creating one with the configured rate and burst if needed.
func (l *Limiter) getOrCreateLimiter(networkStr string) *limiterWrapper {
	if value, ok := l.limiters.Load(networkStr); ok {
		if limWrapper, ok := value.(*limiterWrapper); ok {
			return limWrapper
		}
	}

	fresh := &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Limit(l.settings.RequestsPerSecond), l.settings.Burst),
		network:    networkStr,
		lastAccess: l.now(),
	}

	actual, _ := l.limiters.LoadOrStore(networkStr, fresh)

	limWrapper, ok := actual.(*limiterWrapper)
	if !ok {
		l.limiters.Store(networkStr, fresh)

		return fresh
	}

	return limWrapper
}

// cleanupExpiredLimiters removes limiters that haven't been accessed for the expiry duration.
//
// Returns the number of removed limiters.
func (l *Limiter) cleanupExpiredLimiters() int {
	now := l.now()

	var keysToDelete []any

	l.limiters.Range(func(key, value any) bool {
		limWrapper, ok := value.(*limiterWrapper)
		if !ok {
			keysToDelete = append(keysToDelete, key)

			return true
		}

		limWrapper.mu.Lock()
		lastAccess := limWrapper.lastAccess
		limWrapper.mu.Unlock()

		if now.Sub(lastAccess) > LimiterExpiryDuration {
			keysToDelete = append(keysToDelete, key)
		}

		return true
	})

	for _, key := range keysToDelete {
		l.limiters.Delete(key)
	}

	if len(keysToDelete) > 0 {
		log.Info().Int("count", len(keysToDelete)).
			Msg("Cleaned up expired limiters")
	}

	return len(keysToDelete)
}

// maybeCleanup runs cleanupExpiredLimiters at most once per CleanupInterval.
func (l *Limiter) maybeCleanup() {
	l.cleanupMu.Lock()
	defer l.cleanupMu.Unlock()

	now := l.now()
	if l.lastCleanupAt.IsZero() {
		l.lastCleanupAt = now

		return
	}

	if now.Sub(l.lastCleanupAt) < CleanupInterval {
		return
	}

	l.lastCleanupAt = now
	l.cleanupExpiredLimiters()
}
