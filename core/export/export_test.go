// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package export

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pypeclub/openpype-website/assets"
	"github.com/pypeclub/openpype-website/core/site"
)

func testSite(baseURL string) site.Config {
	return site.Config{
		Title:   "OpenPype",
		Tagline: "Pipeline with support, for studios and remote teams.",
		BaseURL: baseURL,
		Locale:  "en",
	}
}

func runExport(t *testing.T, opts Options) (Result, string) {
	t.Helper()

	if opts.OutputDir == "" {
		opts.OutputDir = t.TempDir()
	}

	e, err := New(opts)
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)

	return res, opts.OutputDir
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Assets: fstest.MapFS{}})
	require.ErrorIs(t, err, errEmptyOutputDir)

	_, err = New(Options{OutputDir: t.TempDir()})
	require.ErrorIs(t, err, errNoAssets)
}

func TestRunWritesPageAndAssets(t *testing.T) {
	t.Parallel()

	res, dir := runExport(t, Options{
		Site:   testSite("/"),
		Assets: assets.FS,
	})

	assert.Contains(t, res.Files, IndexFile)
	assert.Contains(t, res.Files, "css/custom.css")
	assert.Contains(t, res.Files, "img/logos/openpype_color.svg")
	assert.Contains(t, res.Files, "robots.txt")
	assert.Empty(t, res.MissingAssets, "every built-in image is embedded")
	assert.IsNonDecreasing(t, res.Files)

	page, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(page, []byte("<!doctype html>")))
	assert.Contains(t, string(page), "<title>OpenPype- pipeline with support</title>")

	css, err := os.ReadFile(filepath.Join(dir, "css", "custom.css"))
	require.NoError(t, err)

	embedded, err := assets.FS.ReadFile("css/custom.css")
	require.NoError(t, err)
	assert.Equal(t, embedded, css)

	assert.NoFileExists(t, filepath.Join(dir, IndexFile+".gz"), "precompression is off")
}

func TestRunReportsMissingAssets(t *testing.T) {
	t.Parallel()

	content := site.Content{
		Clients: []site.PartnerEntry{
			{Title: "Kredenc", Image: "/img/kredenc.png", InfoLink: "https://kredenc.studio/"},
			{Title: "Remote", Image: "https://cdn.example/logo.png", InfoLink: "https://example.com/"},
		},
	}

	res, _ := runExport(t, Options{
		Site:    testSite("/"),
		Content: content,
		Assets:  assets.FS,
	})

	assert.Equal(t, []string{"img/kredenc.png"}, res.MissingAssets)
}

func TestRunReportsAssetsOutsideBase(t *testing.T) {
	t.Parallel()

	res, _ := runExport(t, Options{
		Site:    testSite("/openpype/"),
		Content: site.DefaultContent(),
		Assets:  assets.FS,
	})

	// Partner and integration images are used verbatim, so a non-root base
	// leaves them pointing outside the exported site.
	assert.Contains(t, res.MissingAssets, "/img/kredenc.png")
	assert.Contains(t, res.MissingAssets, "/img/app_maya.png")
	assert.NotContains(t, res.MissingAssets, "img/logos/openpype_color.svg")
	assert.IsNonDecreasing(t, res.MissingAssets)
}

func TestRunPrecompress(t *testing.T) {
	t.Parallel()

	stylesheet := strings.Repeat(".feature { margin: 0 auto; }\n", 200)

	fsys := fstest.MapFS{
		"css/custom.css": {Data: []byte(stylesheet)},
		"img/photo.png":  {Data: []byte("\x89PNG not really")},
		"robots.txt":     {Data: []byte("x")},
	}

	res, dir := runExport(t, Options{
		Site:        testSite("/"),
		Assets:      fsys,
		Precompress: true,
	})

	assert.Contains(t, res.Files, "css/custom.css.gz")
	assert.Contains(t, res.Files, "css/custom.css.zst")
	assert.Contains(t, res.Files, IndexFile+".gz")
	assert.NotContains(t, res.Files, "img/photo.png.gz", "binary formats are not precompressed")
	assert.NotContains(t, res.Files, "robots.txt.gz", "variants larger than the original are skipped")

	gz, err := os.Open(filepath.Join(dir, "css", "custom.css.gz"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = gz.Close() })

	zr, err := gzip.NewReader(gz)
	require.NoError(t, err)

	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, stylesheet, string(plain))

	zst, err := os.ReadFile(filepath.Join(dir, "css", "custom.css.zst"))
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)

	t.Cleanup(dec.Close)

	plain, err = dec.DecodeAll(zst, nil)
	require.NoError(t, err)
	assert.Equal(t, stylesheet, string(plain))
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	e, err := New(Options{
		OutputDir:   t.TempDir(),
		Site:        testSite("/"),
		Assets:      fstest.MapFS{"robots.txt": {Data: []byte("User-agent: *\n")}},
		Precompress: true,
	})
	require.NoError(t, err)

	first, err := e.Run(context.Background())
	require.NoError(t, err)

	second, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	e, err := New(Options{OutputDir: t.TempDir(), Site: testSite("/"), Assets: assets.FS})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanReferences(t *testing.T) {
	t.Parallel()

	page := []byte(`<!doctype html><html><head>
<link rel="icon" href="/openpype/img/favicon.svg">
<link rel="stylesheet" href="/openpype/css/custom.css?v=2">
<link rel="canonical" href="https://openpype.io/openpype/">
</head><body>
<img src="/openpype/img/logos/openpype_color.svg">
<img src="/openpype/img/logos/openpype_color.svg">
<img src="https://img.shields.io/badge/x">
<img src="/elsewhere/a.png">
<img src="#top">
<img src="/openpype/">
</body></html>`)

	inside, outside, err := scanReferences(page, "openpype")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"css/custom.css",
		"img/favicon.svg",
		"img/logos/openpype_color.svg",
	}, inside)
	assert.Equal(t, []string{"/elsewhere/a.png"}, outside)
}

func TestSiteRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref    string
		name   string
		inBase bool
		ok     bool
	}{
		{ref: "/openpype/img/a.png", name: "img/a.png", inBase: true, ok: true},
		{ref: "img/a.png?v=1", name: "img/a.png", inBase: true, ok: true},
		{ref: "/img/a.png", name: "/img/a.png", ok: true},
		{ref: "../img/a.png", name: "/img/a.png", ok: true},
		{ref: "/openpype/"},
		{ref: "/openpype"},
		{ref: "#top"},
		{ref: "//cdn.example/a.png"},
		{ref: "mailto:team@openpype.io"},
		{ref: ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			name, inBase, ok := siteRelative(tt.ref, "/openpype/")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.inBase, inBase)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestIsCompressible(t *testing.T) {
	t.Parallel()

	assert.True(t, isCompressible("index.html"))
	assert.True(t, isCompressible("img/logo.svg"))
	assert.False(t, isCompressible("img/logo.png"))
	assert.False(t, isCompressible("LICENSE"))
}
