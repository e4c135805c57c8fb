// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/server/middleware"
	"github.com/pypeclub/openpype-website/server/middleware/limiter"
	"github.com/pypeclub/openpype-website/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain selected by config.Global.
func (router *Router) RegisterMiddleware() error {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)

	if config.Global.Response.Compression {
		compress, err := middleware.NewCompress()
		if err != nil {
			return fmt.Errorf("failed to create compression middleware: %w", err)
		}

		router.Use(compress)
	}

	router.Use(set_request_context.New(language.Make(config.Global.Site.Locale))) // needed for everything else
	router.Use(middleware.NormalizeURL)                                          // handle trailing slashes
	router.Use(middleware.SetResponseHeaders)                                    // all pages need this

	if config.Global.Limiter.Enabled {
		router.Use(limiter.New(limiter.SettingsFromConfig(&config.Global)).Evaluate)
	}

	return nil
}
