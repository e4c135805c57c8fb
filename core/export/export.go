// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package export writes the site to a directory that any static file host can serve.

The output mirrors the URL space below the base URL: the homepage becomes
index.html and each embedded asset keeps its path.
*/
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pypeclub/openpype-website/core/audit"
	"github.com/pypeclub/openpype-website/core/site"
	"github.com/pypeclub/openpype-website/server/template"
	"github.com/pypeclub/openpype-website/views"
)

// IndexFile is the name the homepage is written under.
const IndexFile = "index.html"

var (
	errEmptyOutputDir = errors.New("export: output directory is empty")
	errNoAssets       = errors.New("export: no asset filesystem given")
)

// Options selects what is exported and where.
type Options struct {
	OutputDir string

	// Precompress writes .gz and .zst siblings next to text files.
	Precompress bool

	Site    site.Config
	Content site.Content

	// Assets is copied verbatim into OutputDir.
	Assets fs.FS
}

// Result describes a finished export.
type Result struct {
	// Files lists every written file relative to OutputDir, sorted.
	Files []string

	// MissingAssets lists the asset paths the page references that the
	// export cannot satisfy, sorted. Site-relative paths are ones Assets does
	// not provide; absolute paths (leading slash) fall outside the base URL.
	MissingAssets []string
}

// Exporter renders and writes the site.
type Exporter struct {
	opts    Options
	zstdEnc *zstd.Encoder

	mu    sync.Mutex
	files []string
}

// New validates opts and prepares an Exporter.
func New(opts Options) (*Exporter, error) {
	if opts.OutputDir == "" {
		return nil, errEmptyOutputDir
	}

	if opts.Assets == nil {
		return nil, errNoAssets
	}

	e := &Exporter{opts: opts}

	if opts.Precompress {
		// A nil writer lets us use EncodeAll without streams.
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("export: failed to create zstd encoder: %w", err)
		}

		e.zstdEnc = enc
	}

	return e, nil
}

// Run writes the homepage and the assets to OutputDir.
// It must not be called concurrently on the same Exporter.
//
// Missing asset references are reported in the result and logged, but do not
// fail the export.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	e.mu.Lock()
	e.files = nil
	e.mu.Unlock()

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: failed to create output directory: %w", err)
	}

	page, err := template.Render(ctx, views.Home(views.HomeData{
		Site:    e.opts.Site,
		Content: e.opts.Content,
	}))
	if err != nil {
		return Result{}, fmt.Errorf("export: failed to render homepage: %w", err)
	}

	refs, outside, err := scanReferences(page, e.opts.Site.BaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("export: failed to scan homepage: %w", err)
	}

	missing := e.missingAssets(refs)
	for _, ref := range missing {
		log.Warn().Str("asset", ref).Msg("Homepage references an asset that is not embedded")
	}

	for _, ref := range outside {
		log.Warn().
			Str("asset", ref).
			Str("base_url", e.opts.Site.BaseURL).
			Msg("Homepage references an asset outside the base URL")
	}

	missing = append(missing, outside...)
	slices.Sort(missing)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	g.Go(func() error {
		return e.writeFile(gctx, IndexFile, page)
	})

	err = fs.WalkDir(e.opts.Assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		g.Go(func() error {
			data, err := fs.ReadFile(e.opts.Assets, name)
			if err != nil {
				return fmt.Errorf("export: failed to read asset %q: %w", name, err)
			}

			return e.writeFile(gctx, name, data)
		})

		return nil
	})
	if err != nil {
		_ = g.Wait()

		return Result{}, fmt.Errorf("export: failed to walk assets: %w", err)
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	slices.Sort(e.files)

	return Result{Files: e.files, MissingAssets: missing}, nil
}

// writeFile writes data at the slash-separated name below OutputDir, then
// its precompressed siblings if enabled.
func (e *Exporter) writeFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.write(ctx, name, data); err != nil {
		return err
	}

	if e.zstdEnc == nil || !isCompressible(name) {
		return nil
	}

	for _, variant := range e.precompress(data) {
		if err := e.write(ctx, name+variant.ext, variant.data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) write(ctx context.Context, name string, data []byte) error {
	span := audit.Span{
		Destination: audit.ToDisk,
		Method:      "WRITE",
		URL:         name,
		Size:        len(data),
	}
	span.Begin(ctx)

	dst := filepath.Join(e.opts.OutputDir, filepath.FromSlash(name))

	err := os.MkdirAll(filepath.Dir(dst), 0o755)
	if err == nil {
		err = os.WriteFile(dst, data, 0o644)
	}

	span.End()

	if err != nil {
		span.Error = err
		span.Log()

		return fmt.Errorf("export: failed to write %q: %w", name, err)
	}

	span.Log()

	e.mu.Lock()
	e.files = append(e.files, name)
	e.mu.Unlock()

	return nil
}

// missingAssets returns the refs that are not regular files in Assets.
func (e *Exporter) missingAssets(refs []string) []string {
	var missing []string

	for _, ref := range refs {
		name := path.Clean(ref)

		info, err := fs.Stat(e.opts.Assets, name)
		if err != nil || info.IsDir() {
			missing = append(missing, ref)
		}
	}

	return missing
}
