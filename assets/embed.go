// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets embeds the site's static files.

The tree mirrors the URL space: /css/custom.css is served from css/custom.css.
*/
package assets

import "embed"

// FS holds the stylesheets, images and root files served next to the homepage.
//
//go:embed css img manifest.json robots.txt
var FS embed.FS
