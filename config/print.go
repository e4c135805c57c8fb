// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// print logs the startup banner and dumps the effective configuration to stderr.
func (cfg *ServerConfig) print() {
	content := cfg.Site.Content

	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("cacheid", cfg.Instance.FileServerCacheID).
		Str("started", cfg.Instance.StartingTime).
		Str("base_url", cfg.Site.BaseURL).
		Dict("content", zerolog.Dict().
			Int("services", len(content.Services)).
			Int("clients", len(content.Clients)).
			Int("collaborators", len(content.Collaborators)).
			Int("integrations", len(content.Integrations))).
		Msg("Starting OpenPype website")

	enc := yaml.NewEncoder(os.Stderr, GetDurationEncoderOption())
	if err := enc.Encode(cfg); err != nil {
		log.Error().Err(err).Msg("Failed to print configuration")
	}
}
