// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package metrics exposes request metrics in the Prometheus text format.

Each Metrics value owns its registry, so tests can create one without
touching the process-wide default.
*/
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pypeclub/openpype-website/core/audit"
)

const namespace = "openpype_website"

// unmatchedRoute labels requests that did not reach a registered pattern.
const unmatchedRoute = "unmatched"

// Metrics holds the collectors for served responses.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec
}

// Global collects metrics for the running server.
var Global = New()

// New creates a Metrics with a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP responses, by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Time spent producing a response.",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		ResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "Size of response bodies before compression.",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ResponseSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSpan records a finished span under route, the ServeMux pattern that
// served it.
func (m *Metrics) ObserveSpan(route string, span audit.Span) {
	if route == "" {
		route = unmatchedRoute
	}

	m.RequestsTotal.WithLabelValues(span.Method, route, strconv.Itoa(span.StatusCode)).Inc()
	m.RequestDuration.WithLabelValues(span.Method, route).Observe(span.Duration().Seconds())
	m.ResponseSize.WithLabelValues(route).Observe(float64(span.Size))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
