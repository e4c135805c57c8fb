// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command export writes the homepage and its assets to a directory for
// static hosting.
//
// It reads the same configuration as the server. The -out and -precompress
// flags override export.outputDir and export.precompress.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/assets"
	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/core/audit"
	"github.com/pypeclub/openpype-website/core/export"
)

var (
	outputDir   = flag.String("out", "", "Output directory. Overrides export.outputDir.")
	precompress = flag.Bool("precompress", false, "Write .gz and .zst siblings. Overrides export.precompress.")
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
}

func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := export.Options{
		OutputDir:   config.Global.Export.OutputDir,
		Precompress: config.Global.Export.Precompress,
		Site:        config.Global.SiteConfig(),
		Content:     config.Global.Site.Content,
		Assets:      assets.FS,
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			opts.OutputDir = *outputDir
		case "precompress":
			opts.Precompress = *precompress
		}
	})

	exporter, err := export.New(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := exporter.Run(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("dir", opts.OutputDir).
		Int("files", len(result.Files)).
		Int("missing_assets", len(result.MissingAssets)).
		Msg("Export finished")

	return nil
}
