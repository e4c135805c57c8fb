// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"io/fs"
	"net/http"
	"net/http/pprof"
	"path"
	"runtime/trace"
	"strings"
	"time"

	"github.com/pypeclub/openpype-website/assets"
	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/server/metrics"
	"github.com/pypeclub/openpype-website/server/middleware"
	"github.com/pypeclub/openpype-website/server/routes"
)

// DefineRoutes registers every route of the site on the router.
//
// Paths are site-relative; the base URL prefix is removed by MountAt.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer(assets.FS)

	// Root files.
	router.Handle("GET /manifest.json", fileServerHandler)
	router.Handle("GET /robots.txt", fileServerHandler)

	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /img/", fileServerHandler)
	router.Handle("GET /css/", fileServerHandler)

	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Health))
	router.HandleFunc("GET /index.html", redirectToHome)

	if config.Global.Metrics.Enabled {
		router.Handle("GET /metrics", metrics.Global.Handler())
	}

	if config.Global.Development.InDevelopment {
		router.HandleFunc("GET /dev/components", middleware.CatchError(routes.ComponentsPage))
		registerDebugRoutes(router)
	}

	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.HomePage))

	// Everything else.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))
}

// fileServer serves regular files from fsys.
//
// Directories are reported as missing so listings are never exposed.
func fileServer(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)
	notFound := middleware.CatchError(routes.NotFound)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")

		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			notFound(w, r)

			return
		}

		// Using a strong ETag for static files embedded via go:embed
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		//
		// go:embed requires a rebuild when files change, so the per-instance
		// cache ID is enough to invalidate browser caches after a deployment.
		w.Header().Set("ETag", `"`+config.Global.Instance.FileServerCacheID+`"`)
		files.ServeHTTP(w, r)
	})
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	if !flightRecorder.Enabled() {
		if err := flightRecorder.Start(); err != nil {
			panic(err)
		}
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
